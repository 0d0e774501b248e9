package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaCheckMessages(t *testing.T) {
	s := NewSchema()

	tests := []struct {
		name    string
		zone    Zone
		wantErr error
		wantMsg string
	}{
		{
			name:    "valid rect",
			zone:    rectZone("a", 0, 0, 1, 1),
			wantErr: nil,
		},
		{
			name:    "missing id",
			zone:    Zone{Type: TypeRect},
			wantErr: ErrMissingZoneID,
			wantMsg: "'id' is required",
		},
		{
			name:    "negative height",
			zone:    rectZone("a", 0, 0, 1, -1),
			wantErr: ErrInvalidZoneGeometry,
			wantMsg: "'height' value out of allowed range",
		},
		{
			name:    "short polygon",
			zone:    Zone{ID: "p", Type: TypePolygon, Shape: Shape{Points: []float64{1, 2}}},
			wantErr: ErrInvalidZoneGeometry,
			wantMsg: "'points' needs at least 3 coordinate pairs, got 2 values",
		},
		{
			name:    "points ignored for rect",
			zone:    Zone{ID: "r", Type: TypeRect, Shape: Shape{Points: []float64{1}}},
			wantErr: nil,
		},
		{
			name:    "missing type",
			zone:    Zone{ID: "x"},
			wantErr: ErrUnknownZoneType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Check(tt.zone)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSchemaLabel(t *testing.T) {
	s := NewSchema()

	assert.Equal(t, "Front", s.Label("  Front "))
	assert.Equal(t, "Back", s.Label(`<a href="javascript:x">Back</a>`))
	assert.Equal(t, "", s.Label(""))
}

func TestZoneVisibleDefault(t *testing.T) {
	assert.True(t, Zone{}.IsVisible())
	assert.False(t, Zone{Visible: Bool(false)}.IsVisible())
}

func TestRenderErrorMessage(t *testing.T) {
	err := &RenderError{ZoneID: "front", Err: ErrUnknownZoneType}
	assert.Contains(t, err.Error(), `"front"`)
	assert.ErrorIs(t, err, ErrUnknownZoneType)
}
