package referral

import (
	"sort"
	"strings"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// Filter carries every knob the workboard exposes. Zero values mean
// "not filtered" except Zip and RadiusMiles, which the handler defaults
// from configuration.
type Filter struct {
	Search      string
	Stage       string
	Insurance   string
	Priority    string
	Owner       string
	Zip         string
	RadiusMiles float64
	SortKey     string
	SortDesc    bool
}

// Row is a referral annotated with the distance from the provider's ZIP.
// DistanceMiles is nil when either end could not be geocoded.
type Row struct {
	domain.Referral
	DistanceMiles *float64 `json:"distanceMiles"`
}

// Meta summarizes the filtered result set for the workboard's insight tiles.
type Meta struct {
	Total               int      `json:"total"`
	Urgent              int      `json:"urgent"`
	WithinRadius        int      `json:"withinRadius"`
	AverageDistanceMile *float64 `json:"averageDistanceMiles"`
}

// Apply runs the full pipeline: free-text search, exact-match filters,
// distance annotation with a radius cut, then sorting. Rows whose distance
// is unknown survive the radius cut so a missing geocode never hides a
// referral.
func Apply(referrals []domain.Referral, f Filter) ([]Row, Meta) {
	rows := make([]Row, 0, len(referrals))
	for i := range referrals {
		r := referrals[i]
		if !matchesSearch(&r, f.Search) {
			continue
		}
		if f.Stage != "" && string(r.Stage) != f.Stage {
			continue
		}
		if f.Insurance != "" && r.Insurance != f.Insurance {
			continue
		}
		if f.Priority != "" && r.Priority != f.Priority {
			continue
		}
		if !matchesOwner(&r, f.Owner) {
			continue
		}
		rows = append(rows, Row{Referral: r})
	}

	var meta Meta
	if origin, ok := GeocodeZip(f.Zip); ok {
		annotated := rows[:0]
		for _, row := range rows {
			if row.Lat != 0 || row.Lng != 0 {
				d := DistanceMiles(origin, Coordinates{Lat: row.Lat, Lng: row.Lng})
				row.DistanceMiles = &d
				if d > f.RadiusMiles {
					continue
				}
				meta.WithinRadius++
			}
			annotated = append(annotated, row)
		}
		rows = annotated

		// The average covers the rows left on the board, not the ones
		// the radius cut removed, and ignores zero distances.
		var sum float64
		var known int
		for i := range rows {
			if d := rows[i].DistanceMiles; d != nil && *d > 0 {
				sum += *d
				known++
			}
		}
		if known > 0 {
			avg := sum / float64(known)
			meta.AverageDistanceMile = &avg
		}
	}

	sortRows(rows, f.SortKey, f.SortDesc)

	meta.Total = len(rows)
	for i := range rows {
		if rows[i].IsUrgent() {
			meta.Urgent++
		}
	}
	return rows, meta
}

func matchesSearch(r *domain.Referral, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	for _, field := range []string{r.PatientName, r.City, r.State, r.Insurance, r.TherapyType} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func matchesOwner(r *domain.Referral, owner string) bool {
	switch owner {
	case "":
		return true
	case "unassigned":
		return r.Owner == ""
	default:
		return r.Owner == owner
	}
}

func sortRows(rows []Row, key string, desc bool) {
	if key == "" {
		key = "patientName"
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		// Rows with an unknown distance sort last in either direction.
		if key == "distance" {
			switch {
			case a.DistanceMiles == nil && b.DistanceMiles == nil:
				return false
			case a.DistanceMiles == nil:
				return false
			case b.DistanceMiles == nil:
				return true
			}
		}
		cmp := compareRows(a, b, key)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareRows(a, b *Row, key string) int {
	switch key {
	case "waitDays":
		return a.WaitDays - b.WaitDays
	case "distance":
		switch {
		case *a.DistanceMiles < *b.DistanceMiles:
			return -1
		case *a.DistanceMiles > *b.DistanceMiles:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(stringField(a, key), stringField(b, key))
	}
}

func stringField(r *Row, key string) string {
	switch key {
	case "city":
		return r.City
	case "insurance":
		return r.Insurance
	case "stage":
		return string(r.Stage)
	case "owner":
		return r.Owner
	case "priority":
		return r.Priority
	case "therapyType":
		return r.TherapyType
	default:
		return r.PatientName
	}
}
