package zone

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// zoneColorSpace namespaces the name-based UUIDs zone colors are derived from
var zoneColorSpace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("designzone/zone-color"))

// ZoneColor: outline color for a zone id. The hue is taken from a name-based
// UUID of the id, so a zone keeps its color across managers, runs and render
// order; saturation and lightness are fixed so every outline reads on white.
func ZoneColor(zoneID string) string {
	sum := uuid.NewSHA1(zoneColorSpace, []byte(zoneID))
	hue := float64(binary.BigEndian.Uint32(sum[:4])) / (1 << 32)
	return colorful.Hsl(hue*360, 0.7, 0.45).Hex()
}

// normalizeColor: canonical #rrggbb form of a hex color, ok=false if unparsable
func normalizeColor(hex string) (string, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}
