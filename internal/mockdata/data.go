// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mockdata holds the built-in sample content used when no backend
// is configured, and as seed rows for a fresh database.
package mockdata

import "github.com/kcssc/kcssc-go/internal/model"

func ptr(s string) *string { return &s }

// Events returns the sample events in display order (date then time).
// Dates use the "January 2, 2006" display format.
func Events() []model.Event {
	return []model.Event{
		{
			ID:          1,
			Title:       "Lunar New Year Celebration",
			Date:        "January 25, 2025",
			Time:        "11:00 AM - 3:00 PM",
			Location:    "Community Hall",
			Category:    "cultural",
			Description: "Join us for our annual Lunar New Year celebration with traditional performances, food, and festivities for the whole family.",
			Featured:    true,
		},
		{
			ID:          2,
			Title:       "Senior Health & Wellness Workshop",
			Date:        "January 15, 2025",
			Time:        "10:00 AM - 12:00 PM",
			Location:    "Activity Room A",
			Category:    "health",
			Description: "Learn about healthy aging, nutrition tips, and gentle exercises designed for seniors.",
		},
		{
			ID:          3,
			Title:       "Chinese Painting Class",
			Date:        "January 18, 2025",
			Time:        "2:00 PM - 4:00 PM",
			Location:    "Art Studio",
			Category:    "arts",
			Description: "Explore traditional Chinese brush painting techniques with our experienced instructor.",
		},
		{
			ID:          4,
			Title:       "Tai Chi in the Park",
			Date:        "January 20, 2025",
			Time:        "8:00 AM - 9:00 AM",
			Location:    "Walter Baker Park",
			Category:    "health",
			Description: "Start your day with gentle Tai Chi movements suitable for all experience levels.",
		},
		{
			ID:          5,
			Title:       "Dumpling Making Workshop",
			Date:        "January 22, 2025",
			Time:        "1:00 PM - 3:30 PM",
			Location:    "Community Kitchen",
			Category:    "cultural",
			Description: "Learn to make traditional dumplings from scratch. All materials provided, take home what you make!",
			Featured:    true,
		},
		{
			ID:          6,
			Title:       "Tech Help Desk",
			Date:        "January 24, 2025",
			Time:        "10:00 AM - 12:00 PM",
			Location:    "Computer Lab",
			Category:    "education",
			Description: "Get one-on-one help with your smartphone, tablet, or computer from friendly volunteers.",
		},
		{
			ID:          7,
			Title:       "Movie Afternoon",
			Date:        "January 28, 2025",
			Time:        "2:00 PM - 4:30 PM",
			Location:    "Community Hall",
			Category:    "social",
			Description: "Enjoy a classic Chinese film with subtitles, complete with snacks and good company.",
		},
		{
			ID:          8,
			Title:       "Spring Festival Concert",
			Date:        "February 1, 2025",
			Time:        "7:00 PM - 9:00 PM",
			Location:    "Community Hall",
			Category:    "cultural",
			Description: "An evening of traditional music and dance performances celebrating the spring festival season.",
			Featured:    true,
		},
		{
			ID:          9,
			Title:       "Morning Exercise Group",
			Date:        "January 16, 2025",
			Time:        "9:00 AM - 10:00 AM",
			Location:    "Activity Room B",
			Category:    "health",
			Description: "Low-impact group exercises to keep you moving through the winter months.",
		},
		{
			ID:          10,
			Title:       "Calligraphy Workshop",
			Date:        "January 17, 2025",
			Time:        "1:00 PM - 3:00 PM",
			Location:    "Art Studio",
			Category:    "arts",
			Description: "Practice the meditative art of Chinese calligraphy. Brushes and paper supplied.",
		},
		{
			ID:          11,
			Title:       "Community Lunch",
			Date:        "January 19, 2025",
			Time:        "12:00 PM - 1:30 PM",
			Location:    "Community Kitchen",
			Category:    "social",
			Description: "A shared meal bringing together members old and new. Vegetarian options available.",
		},
	}
}

// Programs returns the sample recurring programs.
func Programs() []model.Program {
	return []model.Program{
		{
			ID:          1,
			Title:       "Chinese Brush Painting",
			Category:    "arts",
			Icon:        "Palette",
			Schedule:    "Tuesdays, 2:00 PM - 4:00 PM",
			AgeGroup:    "Adults & Seniors",
			Description: "Weekly classes exploring landscape, flower and bird painting in the traditional style.",
			Spots:       "5 spots left",
		},
		{
			ID:          2,
			Title:       "Tai Chi for Beginners",
			Category:    "health",
			Icon:        "Heart",
			Schedule:    "Mondays, Wednesdays and Fridays, 8:00 AM - 9:00 AM",
			AgeGroup:    "Seniors",
			Description: "Gentle introduction to Yang-style Tai Chi focusing on balance and breathing.",
			Spots:       "Open enrollment",
		},
		{
			ID:          3,
			Title:       "Chinese Folk Dance",
			Category:    "arts",
			Icon:        "Music",
			Schedule:    "Saturdays, 10:00 AM - 11:30 AM",
			AgeGroup:    "All ages",
			Description: "Learn traditional folk dances from different regions of China.",
			Spots:       "3 spots left",
		},
		{
			ID:          4,
			Title:       "Mandarin Conversation Circle",
			Category:    "education",
			Icon:        "BookOpen",
			Schedule:    "Thursdays, 6:30 PM - 8:00 PM",
			AgeGroup:    "Adults",
			Description: "Practice conversational Mandarin in a relaxed, supportive group setting.",
			Spots:       "Open enrollment",
		},
		{
			ID:          5,
			Title:       "Cooking Regional Cuisines",
			Category:    "cultural",
			Icon:        "Utensils",
			Schedule:    "Second Saturday of each month, 1:00 PM - 3:30 PM",
			AgeGroup:    "Adults & Seniors",
			Description: "Monthly hands-on cooking sessions featuring dishes from a different Chinese region.",
			Spots:       "8 spots left",
		},
		{
			ID:          6,
			Title:       "Gentle Exercise",
			Category:    "health",
			Icon:        "Dumbbell",
			Schedule:    "Tuesdays and Thursdays, 9:00 AM - 10:00 AM",
			AgeGroup:    "Seniors",
			Description: "Chair-assisted strength and flexibility exercises led by a certified instructor.",
			Spots:       "Open enrollment",
		},
		{
			ID:          7,
			Title:       "Chinese Calligraphy",
			Category:    "arts",
			Icon:        "Users",
			Schedule:    "Wednesdays, 1:00 PM - 3:00 PM",
			AgeGroup:    "Adults & Seniors",
			Description: "Study brush technique and classical scripts from beginner to advanced.",
			Spots:       "6 spots left",
		},
		{
			ID:          8,
			Title:       "Community Choir",
			Category:    "cultural",
			Icon:        "Globe",
			Schedule:    "Fridays, 7:00 PM - 8:30 PM",
			AgeGroup:    "All ages",
			Description: "Sing Chinese and Canadian songs together. No audition required.",
			Spots:       "Open enrollment",
		},
	}
}

// Photos returns the sample gallery photos, newest first.
func Photos() []model.Photo {
	return []model.Photo{
		{
			ID:          1,
			Photo:       "/uploads/lunar-new-year-dragon.jpg",
			Description: ptr("Dragon dance at the 2024 Lunar New Year celebration"),
			Event:       "Lunar New Year Celebration",
			Date:        "2024-02-10",
			Favourite:   true,
		},
		{
			ID:        2,
			Photo:     "/uploads/dumpling-workshop-group.jpg",
			Event:     "Dumpling Making Workshop",
			Date:      "2024-01-20",
			Favourite: false,
		},
		{
			ID:          3,
			Photo:       "/uploads/tai-chi-morning.jpg",
			Description: ptr("Morning Tai Chi session at Walter Baker Park"),
			Event:       "Tai Chi in the Park",
			Date:        "2023-09-15",
			Favourite:   true,
		},
		{
			ID:          4,
			Photo:       "/uploads/choir-performance.jpg",
			Description: ptr("Community choir performing at the spring concert"),
			Event:       "Spring Festival Concert",
			Date:        "2023-04-22",
			Favourite:   false,
		},
	}
}
