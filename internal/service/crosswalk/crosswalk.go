// Package crosswalk corrects genre-identifier drift between the movie and
// TV taxonomies of the external catalog. A few ids coincide (Western is 37
// on both sides), while others differ: the movie catalog splits Action (28)
// and Adventure (12) where the TV catalog has a single combined
// Action & Adventure (10759), and similarly for Sci-Fi/Fantasy and War.
package crosswalk

// Combined TV-side genre ids.
const (
	TVActionAdventure = 10759
	TVSciFiFantasy    = 10765
	TVWarPolitics     = 10768
)

var movieToTV = map[int]int{
	28:    TVActionAdventure, // Action
	12:    TVActionAdventure, // Adventure
	14:    TVSciFiFantasy,    // Fantasy
	878:   TVSciFiFantasy,    // Science Fiction
	10752: TVWarPolitics,     // War
	27:    9648,              // Horror has no TV counterpart; Mystery is closest
	53:    9648,              // Thriller likewise
}

// The TV -> movie direction maps each combined id onto its primary movie
// constituent. Ids absent from both tables are shared across taxonomies.
var tvToMovie = map[int]int{
	TVActionAdventure: 28,    // Action
	TVSciFiFantasy:    878,   // Science Fiction
	TVWarPolitics:     10752, // War
	10762:             10751, // Kids -> Family
}

var movieGenres = map[int]struct{}{
	28: {}, 12: {}, 16: {}, 35: {}, 80: {}, 99: {}, 18: {}, 10751: {},
	14: {}, 36: {}, 27: {}, 10402: {}, 9648: {}, 10749: {}, 878: {},
	10770: {}, 53: {}, 10752: {}, 37: {},
}

var tvGenres = map[int]struct{}{
	10759: {}, 16: {}, 35: {}, 80: {}, 99: {}, 18: {}, 10751: {},
	10762: {}, 9648: {}, 10763: {}, 10764: {}, 10765: {}, 10766: {},
	10767: {}, 10768: {}, 37: {},
}

// ToTV maps movie-taxonomy genre ids onto the TV taxonomy, collapsing
// duplicates while preserving first-seen order. Ids without a counterpart
// pass through unchanged.
func ToTV(genreIDs []int) []int {
	return translate(genreIDs, movieToTV)
}

// ToMovie maps TV-taxonomy genre ids onto the movie taxonomy.
func ToMovie(genreIDs []int) []int {
	return translate(genreIDs, tvToMovie)
}

func translate(genreIDs []int, table map[int]int) []int {
	if len(genreIDs) == 0 {
		return nil
	}
	out := make([]int, 0, len(genreIDs))
	seen := make(map[int]struct{}, len(genreIDs))
	for _, id := range genreIDs {
		mapped, ok := table[id]
		if !ok {
			mapped = id
		}
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		out = append(out, mapped)
	}
	return out
}

// KnownMovieGenre reports whether id belongs to the movie taxonomy.
func KnownMovieGenre(id int) bool {
	_, ok := movieGenres[id]
	return ok
}

// KnownTVGenre reports whether id belongs to the TV taxonomy.
func KnownTVGenre(id int) bool {
	_, ok := tvGenres[id]
	return ok
}
