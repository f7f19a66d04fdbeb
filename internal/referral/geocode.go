package referral

import "math"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// zipTable seeds the metros the demo referrals live in. Production would
// swap a real geocoder in behind GeocodeZip; the lookup shape stays.
var zipTable = map[string]Coordinates{
	"46077": {Lat: 39.9506, Lng: -86.2625}, // Zionsville
	"46240": {Lat: 39.9164, Lng: -86.1085}, // Indianapolis
	"46032": {Lat: 39.9784, Lng: -86.1180}, // Carmel
	"46060": {Lat: 40.0456, Lng: -86.0086}, // Noblesville
	"46038": {Lat: 39.9568, Lng: -85.9685}, // Fishers
	"40207": {Lat: 38.2527, Lng: -85.7585}, // Louisville, KY
	"40202": {Lat: 38.2542, Lng: -85.7594}, // Louisville downtown
	"27601": {Lat: 35.7796, Lng: -78.6382}, // Raleigh, NC
	"28202": {Lat: 35.2271, Lng: -80.8431}, // Charlotte, NC
	"60601": {Lat: 41.8781, Lng: -87.6298}, // Chicago, IL
}

// GeocodeZip resolves a 5-digit ZIP against the seeded table. ok is false
// for malformed or unknown codes.
func GeocodeZip(zip string) (Coordinates, bool) {
	if len(zip) != 5 {
		return Coordinates{}, false
	}
	c, ok := zipTable[zip]
	return c, ok
}

// DistanceMiles is the haversine great-circle distance between two points.
func DistanceMiles(a, b Coordinates) float64 {
	const earthRadiusMiles = 3958.8

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}
