package storefront

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/etalasekita/etalase/internal/domain/catalog"
)

// Placeholder area for vendors without stored coordinates.
const (
	placeholderLat    = -6.2
	placeholderLng    = 106.8
	placeholderSpread = 5.0
)

// Marker is a vendor pin on the map.
type Marker struct {
	VendorID         int64
	Name             string
	City             string
	Province         string
	ShortDescription string
	Logo             string
	Lat              float64
	Lng              float64
	// Approximate is set when the vendor has no stored location and the
	// position was derived from its id.
	Approximate bool
}

// Markers places every vendor on the map, in input order. Vendors with a
// stored location use it; the rest get a position derived from their id, so
// the same vendor always lands on the same spot.
func Markers(vendors []catalog.Vendor) []Marker {
	out := make([]Marker, len(vendors))
	for i, v := range vendors {
		m := Marker{
			VendorID:         v.ID,
			Name:             v.Name,
			City:             v.City,
			Province:         v.Province,
			ShortDescription: v.ShortDescription,
			Logo:             v.Logo,
		}
		if v.Location != nil {
			m.Lat, m.Lng = v.Location.Lat, v.Location.Lng
		} else {
			m.Lat, m.Lng = placeholderPosition(v.ID)
			m.Approximate = true
		}
		out[i] = m
	}
	return out
}

func placeholderPosition(id int64) (lat, lng float64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	sum := h.Sum64()

	return placeholderLat + spread(uint32(sum>>32)), placeholderLng + spread(uint32(sum))
}

// spread maps v onto [-placeholderSpread, placeholderSpread).
func spread(v uint32) float64 {
	return (float64(v)/(1<<32)*2 - 1) * placeholderSpread
}
