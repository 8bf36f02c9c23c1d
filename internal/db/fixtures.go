package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdxmph/clientbook/internal/model"
)

func birthday(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Fixtures returns the sample clients written by CreateFixturesDatabase
func Fixtures() []model.Contact {
	return []model.Contact{
		{
			Name:       "Alex Yeoh",
			Phone:      "87438807",
			Email:      "alexyeoh@example.com",
			Address:    "Blk 30 Geylang Street 29, #06-40",
			Birthday:   birthday(1999, time.March, 14),
			HasPaid:    true,
			Frequency:  model.FrequencyMonthly,
			ProfilePic: "alex.png",
			Tags:       []model.Tag{"friends", "lowNetworth"},
		},
		{
			Name:      "Bernice Yu",
			Phone:     "99272758",
			Email:     "berniceyu@example.com",
			Address:   "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
			Birthday:  birthday(1986, time.August, 2),
			HasPaid:   false,
			Frequency: model.FrequencyQuarterly,
			Tags:      []model.Tag{"colleagues", "friends", "midNetworth"},
		},
		{
			Name:      "Charlotte Oliveiro",
			Phone:     "93210283",
			Email:     "charlotte@example.com",
			Address:   "Blk 11 Ang Mo Kio Street 74, #11-04",
			Birthday:  birthday(1965, time.November, 21),
			HasPaid:   true,
			Frequency: model.FrequencyYearly,
			Tags:      []model.Tag{"neighbours", "highNetworth"},
		},
		{
			Name:      "David Li",
			Phone:     "91031282",
			Email:     "lidavid@example.com",
			Address:   "Blk 436 Serangoon Gardens Street 26, #16-43",
			Birthday:  birthday(1978, time.May, 9),
			HasPaid:   false,
			Frequency: model.FrequencyHalfYearly,
			Tags:      []model.Tag{"family"},
		},
		{
			Name:      "Irfan Ibrahim",
			Phone:     "92492021",
			Email:     "irfan@example.com",
			Address:   "Blk 47 Tampines Street 20, #17-35",
			Birthday:  birthday(2001, time.January, 30),
			HasPaid:   true,
			Frequency: model.FrequencyMonthly,
			Tags:      []model.Tag{"classmates"},
		},
		{
			Name:      "Roy Balakrishnan",
			Phone:     "92624417",
			Email:     "royb@example.com",
			Address:   "Blk 45 Aljunied Street 85, #11-31",
			Frequency: model.FrequencyNone,
			Tags:      []model.Tag{"colleagues", "HighNetWorth"},
		},
	}
}

// CreateFixturesDatabase creates a database with realistic sample data
func CreateFixturesDatabase(dbPath string, logger *zap.Logger) error {
	if err := Initialize(dbPath); err != nil {
		return fmt.Errorf("initializing fixtures database: %w", err)
	}

	database, err := Open(dbPath, logger)
	if err != nil {
		return fmt.Errorf("opening fixtures database: %w", err)
	}
	defer database.Close()

	for _, contact := range Fixtures() {
		if _, err := database.AddContact(contact); err != nil {
			return fmt.Errorf("adding fixture contact %s: %w", contact.Name, err)
		}
	}

	return nil
}
