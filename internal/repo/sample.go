package repo

import "github.com/mesh-intelligence/itinerary/pkg/types"

// SampleTripID is the id of the bundled sample trip.
const SampleTripID = "sample-trip"

// SampleTrip returns a fresh copy of the bundled Paris itinerary used to seed
// an empty store.
func SampleTrip() types.Trip {
	return types.Trip{
		ID:          SampleTripID,
		Title:       "Paris 2025",
		StartDate:   "2025-05-20",
		EndDate:     "2025-05-25",
		Destination: "Paris, France",
		Description: "A lovely spring trip to the City of Light",
		CoverImage:  "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
		Days: []types.Day{
			{
				ID:    "day-1",
				Title: "Day 1: Arrival & Eiffel Tower",
				Date:  "2025-05-20",
				Activities: []types.Activity{
					{
						ID:       "act-1-1",
						Title:    "Check-in at Hotel du Louvre",
						Type:     types.ActivityHotel,
						Time:     "14:00",
						Location: "Place André Malraux, 75001 Paris",
					},
					{
						ID:          "act-1-2",
						Title:       "Eiffel Tower Visit",
						Type:        types.ActivityLandmark,
						Time:        "18:00",
						Description: "Sunset visit to the Eiffel Tower",
						Location:    "Champ de Mars, 5 Av. Anatole France, 75007 Paris",
					},
					{
						ID:          "act-1-3",
						Title:       "Dinner at Le Jules Verne",
						Type:        types.ActivityFood,
						Time:        "20:30",
						Description: "Elegant dinner with a view",
						Location:    "Eiffel Tower, 2nd floor",
					},
				},
			},
			{
				ID:    "day-2",
				Title: "Day 2: Museums & Notre-Dame",
				Date:  "2025-05-21",
				Activities: []types.Activity{
					{
						ID:          "act-2-1",
						Title:       "Louvre Museum",
						Type:        types.ActivityMuseum,
						Time:        "10:00",
						Description: "Visit the world's largest art museum",
						Location:    "Rue de Rivoli, 75001 Paris",
					},
					{
						ID:       "act-2-2",
						Title:    "Lunch at Café Marly",
						Type:     types.ActivityFood,
						Time:     "13:30",
						Location: "93 Rue de Rivoli, 75001 Paris",
					},
					{
						ID:          "act-2-3",
						Title:       "Notre-Dame Cathedral (Exterior View)",
						Type:        types.ActivityLandmark,
						Time:        "15:30",
						Description: "See the famous cathedral (under reconstruction)",
						Location:    "6 Parvis Notre-Dame - Pl. Jean-Paul II, 75004 Paris",
					},
				},
			},
			{
				ID:    "day-3",
				Title: "Day 3: Montmartre & Shopping",
				Date:  "2025-05-22",
				Activities: []types.Activity{
					{
						ID:       "act-3-1",
						Title:    "Sacré-Cœur Basilica",
						Type:     types.ActivityLandmark,
						Time:     "10:00",
						Location: "35 Rue du Chevalier de la Barre, 75018 Paris",
					},
					{
						ID:       "act-3-2",
						Title:    "Shopping at Galeries Lafayette",
						Type:     types.ActivityShopping,
						Time:     "14:00",
						Location: "40 Boulevard Haussmann, 75009 Paris",
					},
				},
			},
		},
	}
}
