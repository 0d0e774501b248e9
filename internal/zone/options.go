package zone

import (
	"go.uber.org/zap"
)

// Option configures a Manager
type Option func(*Manager)

// WithLogger: structured logger for render failures and clamps
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStyle: outline and label paint. An unparsable Stroke falls back to ZoneColor.
func WithStyle(style Style) Option {
	return func(m *Manager) {
		if style.Stroke != "" {
			hex, ok := normalizeColor(style.Stroke)
			if !ok {
				m.logger.Warn("ignoring invalid zone stroke color", zap.String("stroke", style.Stroke))
			}
			style.Stroke = hex
		}
		if style.StrokeWidth <= 0 {
			style.StrokeWidth = DefaultStyle().StrokeWidth
		}
		if style.LabelFontSize <= 0 {
			style.LabelFontSize = DefaultStyle().LabelFontSize
		}
		if style.LabelFill == "" {
			style.LabelFill = DefaultStyle().LabelFill
		}
		m.style = style
	}
}

// WithExactConstraints: after bounding-box clamping, also pull content fully
// inside the true outline of circle, ellipse and polygon zones
func WithExactConstraints() Option {
	return func(m *Manager) {
		m.exact = true
	}
}
