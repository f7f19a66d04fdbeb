package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/availability"
	"github.com/therapprove/provider-portal/backend/internal/domain"
	"github.com/therapprove/provider-portal/backend/internal/referral"
)

var firstNames = []string{
	"Emma", "Lucas", "Sophia", "Aiden", "Isabella", "Michael", "Olivia",
	"Jake", "Mia", "Ethan", "Ava", "Noah", "Lily", "Mason", "Grace",
}

var lastNames = []string{
	"Johnson", "Martinez", "Chen", "Brown", "Garcia", "Wilson", "Davis",
	"Thompson", "Anderson", "Taylor", "Moore", "Jackson", "White", "Harris",
}

func GenerateRandomPatientName() string {
	return lastNames[rand.Intn(len(lastNames))] + ", " + firstNames[rand.Intn(len(firstNames))]
}

var owners = []string{"Sarah K.", "Mike R.", "Lisa M.", ""}

var seedZips = []string{
	"46077", "46240", "46032", "46060", "46038",
	"40207", "40202", "27601", "28202", "60601",
}

var zipCities = map[string][2]string{
	"46077": {"Zionsville", "IN"},
	"46240": {"Indianapolis", "IN"},
	"46032": {"Carmel", "IN"},
	"46060": {"Noblesville", "IN"},
	"46038": {"Fishers", "IN"},
	"40207": {"Louisville", "KY"},
	"40202": {"Louisville", "KY"},
	"27601": {"Raleigh", "NC"},
	"28202": {"Charlotte", "NC"},
	"60601": {"Chicago", "IL"},
}

var insurances = []string{"ppo", "hmo", "epo", "pos"}

var therapyTypes = []string{
	"ABA Therapy", "Speech Therapy", "Occupational Therapy", "Physical Therapy",
}

var priorities = []string{"normal", "due-today", "overdue", "urgent"}

// GenerateRandomAvailability fills the anchor's week with contiguous
// quarter-hour blocks, the shape a provider would actually draw.
func GenerateRandomAvailability(anchor time.Time) domain.WeeklyAvailability {
	result := domain.WeeklyAvailability{}

	for offset := 0; offset < 7; offset++ {
		if rand.Intn(4) == 0 {
			continue
		}
		dateKey := availability.DateKeyForDay(anchor, offset)
		set := domain.TimeSet{}

		blocks := rand.Intn(2) + 1
		for b := 0; b < blocks; b++ {
			startQuarter := (rand.Intn(10) + 7*4) + b*20 // from 7:00 on, blocks apart
			length := rand.Intn(12) + 4
			for q := startQuarter; q < startQuarter+length && q < 96; q++ {
				set[availability.TimeKey(q/4, q%4)] = struct{}{}
			}
		}
		result[dateKey] = set
	}
	return result
}

// GenerateRandomReferrals builds n demo referrals across the seeded metros.
func GenerateRandomReferrals(n int) []domain.Referral {
	referrals := make([]domain.Referral, 0, n)

	for i := 0; i < n; i++ {
		zip := seedZips[rand.Intn(len(seedZips))]
		city := zipCities[zip]
		coords, _ := referral.GeocodeZip(zip)
		stage := domain.ReferralStages[rand.Intn(len(domain.ReferralStages))]
		parent := lastNames[rand.Intn(len(lastNames))] + ", " + firstNames[rand.Intn(len(firstNames))]

		referrals = append(referrals, domain.Referral{
			ID:          fmt.Sprintf("%d", 12847+i),
			PatientName: GenerateRandomPatientName(),
			City:        city[0],
			State:       city[1],
			Zip:         zip,
			Insurance:   insurances[rand.Intn(len(insurances))],
			TherapyType: therapyTypes[rand.Intn(len(therapyTypes))],
			Priority:    priorities[rand.Intn(len(priorities))],
			Stage:       stage,
			Owner:       owners[rand.Intn(len(owners))],
			WaitDays:    rand.Intn(90),
			Age:         fmt.Sprintf("%dy %dm", rand.Intn(8)+2, rand.Intn(12)),
			ParentName:  parent,
			Phone:       fmt.Sprintf("(317) 555-%04d", rand.Intn(10000)),
			Lat:         coords.Lat,
			Lng:         coords.Lng,
		})
	}
	return referrals
}
