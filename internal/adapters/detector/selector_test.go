package detector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carry/internal/adapters/detector"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestSelector_Auto(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		want      domain.DetectorMode
	}{
		{name: "hasher available", available: true, want: domain.DetectorContent},
		{name: "hasher unavailable", available: false, want: domain.DetectorMtime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hasher := mocks.NewMockHasher(ctrl)
			content := mocks.NewMockChangeDetector(ctrl)
			mtime := mocks.NewMockChangeDetector(ctrl)
			content.EXPECT().Mode().Return(domain.DetectorContent).AnyTimes()
			mtime.EXPECT().Mode().Return(domain.DetectorMtime).AnyTimes()

			hasher.EXPECT().Available(gomock.Any()).Return(tt.available).Times(1)

			sel := detector.NewSelector(domain.DetectorAuto, hasher, content, mtime)

			assert.Equal(t, tt.want, sel.Mode())
			assert.Equal(t, tt.want, sel.Mode(), "the choice is probed once per run")
		})
	}
}

func TestSelector_Forced(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockHasher(ctrl)
	content := mocks.NewMockChangeDetector(ctrl)
	mtime := mocks.NewMockChangeDetector(ctrl)
	ctx := context.Background()

	mtime.EXPECT().Baseline(ctx, []string{"/c"}).Return(nil)
	mtime.EXPECT().Detect(ctx).Return(domain.ChangeReport{Changed: true, Mode: domain.DetectorMtime}, nil)

	sel := detector.NewSelector(domain.DetectorMtime, hasher, content, mtime)

	require.NoError(t, sel.Baseline(ctx, []string{"/c"}))
	report, err := sel.Detect(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DetectorMtime, report.Mode)
}

func TestSelector_ForcedContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockHasher(ctrl)
	content := mocks.NewMockChangeDetector(ctrl)
	mtime := mocks.NewMockChangeDetector(ctrl)

	content.EXPECT().Mode().Return(domain.DetectorContent)

	sel := detector.NewSelector(domain.DetectorContent, hasher, content, mtime)

	assert.Equal(t, domain.DetectorContent, sel.Mode())
}
