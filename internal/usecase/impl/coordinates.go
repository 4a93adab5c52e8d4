package impl

import "github.com/paulmach/orb"

func latitude(p *orb.Point) *float64 {
	if p == nil {
		return nil
	}
	lat := p.Lat()

	return &lat
}

func longitude(p *orb.Point) *float64 {
	if p == nil {
		return nil
	}
	lon := p.Lon()

	return &lon
}
