// Package data provides static data definitions for the application.
// These data are maintained manually and updated periodically.
//
// All tables are package-level values initialized once at program start and
// never mutated afterwards, so they are safe to read from any goroutine.
// Accessors hand out copies; callers cannot modify the tables.
package data

import "slices"

// Supported year range for the year-keyed tables (inclusive on both ends).
const (
	FirstYear = 2016
	LastYear  = 2020
)

// RankedShow is a series title together with its IMDb score.
type RankedShow struct {
	Title string
	Score float64
}

// bestShowByYear holds the highest rated series released in each year.
// 2018 is a tie and keeps both titles in a single entry.
var bestShowByYear = map[int]string{
	2020: "Middleditch & Schwartz",
	2019: "Our Planet",
	2018: "Sacred Games & The Haunting",
	2017: "The Vietnam War",
	2016: "Stranger Things",
}

// topFiveByYear holds the five highest rated series per year, score descending.
var topFiveByYear = map[int][5]RankedShow{
	2020: {
		{"Middleditch & Schwartz", 8.7},
		{"The Midnight Gospel", 8.4},
		{"Cheer", 8.2},
		{"The Trials of Gabriel Fernandez", 8.2},
		{"Unorthodox", 8.1},
	},
	2019: {
		{"Our Planet", 9.3},
		{"When They See Us", 8.9},
		{"The Dark Crystal: Age of Resistance", 8.5},
		{"Love, Death & Robots", 8.5},
		{"After Life", 8.5},
	},
	2018: {
		{"Sacred Games", 8.7},
		{"The Haunting", 8.7},
		{"Pose", 8.6},
		{"Hilda", 8.6},
		{"Queer Eye", 8.5},
	},
	2017: {
		{"The Vietnam War", 9.1},
		{"Dark", 8.7},
		{"Anne with an E", 8.6},
		{"Mindhunter", 8.6},
		{"Time: The Kalief Browder Story", 8.5},
	},
	2016: {
		{"Stranger Things", 8.8},
		{"The Crown", 8.7},
		{"Last Chance U", 8.5},
		{"American Crime Story", 8.4},
		{"Lucifer", 8.2},
	},
}

// BestShow returns the best rated series of the given year.
func BestShow(year int) (string, bool) {
	title, ok := bestShowByYear[year]
	return title, ok
}

// TopFive returns the five best rated series of the given year in
// descending score order. The array is returned by value.
func TopFive(year int) ([5]RankedShow, bool) {
	shows, ok := topFiveByYear[year]
	return shows, ok
}

// IMDbScore returns the IMDb score of a series.
// The title must match the catalogue entry exactly (case-sensitive).
func IMDbScore(title string) (float64, bool) {
	score, ok := imdbScoreByTitle[title]
	return score, ok
}

// Years returns the years covered by the year-keyed tables in ascending order.
func Years() []int {
	years := make([]int, 0, len(bestShowByYear))
	for year := range bestShowByYear {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// TitleCount returns the number of series in the IMDb score table.
func TitleCount() int {
	return len(imdbScoreByTitle)
}
