package track

import (
	"strings"
	"testing"

	"github.com/hazadus/feelmusic/internal/data"
)

func testSongs() []data.Song {
	return []data.Song{
		{ID: 1, Name: "Colors", Artist: "William King", TopTrack: true},
		{ID: 2, Name: "Buenos Aires", Artist: "Kaiser", TopTrack: false},
		{ID: 3, Name: "Mi Amor", Artist: "Pablo Estes", TopTrack: true},
		{ID: 4, Name: "Kingdom", Artist: "Nora Vale", TopTrack: false},
		{ID: 5, Name: "Summer Haze", Artist: "The Lanterns", TopTrack: true},
	}
}

func ids(songs []data.Song) []int {
	result := make([]int, len(songs))
	for i, s := range songs {
		result[i] = s.ID
	}
	return result
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		tab      Tab
		expected []int
	}{
		{"empty search for you", "", ForYou, []int{1, 2, 3, 4, 5}},
		{"empty search top tracks", "", TopTracks, []int{1, 3, 5}},
		{"name match", "colors", ForYou, []int{1}},
		{"artist match", "kaiser", ForYou, []int{2}},
		{"case insensitive", "KING", ForYou, []int{1, 4}},
		{"name or artist", "king", TopTracks, []int{1}},
		{"substring", "a", TopTracks, []int{1, 3, 5}},
		{"substring in name only", "haze", TopTracks, []int{5}},
		{"no match", "zzz", ForYou, []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ids(Filter(testSongs(), test.search, test.tab))
			if !equalIDs(result, test.expected) {
				t.Errorf("Filter(%q, %s) = %v, expected %v", test.search, test.tab, result, test.expected)
			}
		})
	}
}

// Каждая песня результата удовлетворяет правилу, каждая подходящая песня присутствует,
// а порядок совпадает с порядком каталога
func TestFilterMatchesRule(t *testing.T) {
	songs := testSongs()
	for _, search := range []string{"", "a", "K", "es", "nothing"} {
		for _, tab := range Tabs() {
			var expected []int
			for _, s := range songs {
				term := strings.ToLower(search)
				match := strings.Contains(strings.ToLower(s.Name), term) ||
					strings.Contains(strings.ToLower(s.Artist), term)
				if match && (tab == ForYou || s.TopTrack) {
					expected = append(expected, s.ID)
				}
			}
			result := ids(Filter(songs, search, tab))
			if len(expected) == 0 {
				expected = []int{}
			}
			if !equalIDs(result, expected) {
				t.Errorf("Filter(%q, %s) = %v, expected %v", search, tab, result, expected)
			}
		}
	}
}

func TestFilterTopTracksScenario(t *testing.T) {
	songs := []data.Song{
		{ID: 1, Name: "A", Artist: "X", TopTrack: true},
		{ID: 2, Name: "B", Artist: "Y", TopTrack: false},
	}

	result := Filter(songs, "", TopTracks)
	if len(result) != 1 || result[0].ID != 1 {
		t.Errorf("Ожидался только трек 1, получено %v", ids(result))
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	songs := testSongs()
	_ = Filter(songs, "king", TopTracks)
	if !equalIDs(ids(songs), []int{1, 2, 3, 4, 5}) {
		t.Errorf("Filter изменил исходный срез: %v", ids(songs))
	}
}

func TestNextPrevious(t *testing.T) {
	songs := testSongs()

	tests := []struct {
		current  int
		next     int
		previous int
	}{
		{1, 2, 5},
		{3, 4, 2},
		{5, 1, 4},
	}

	for _, test := range tests {
		current := songs[test.current-1]
		next, ok := Next(songs, &current)
		if !ok || next.ID != test.next {
			t.Errorf("Next(%d) = %d, expected %d", test.current, next.ID, test.next)
		}
		previous, ok := Previous(songs, &current)
		if !ok || previous.ID != test.previous {
			t.Errorf("Previous(%d) = %d, expected %d", test.current, previous.ID, test.previous)
		}
	}
}

func TestNextPreviousInverse(t *testing.T) {
	for n := 1; n <= len(testSongs()); n++ {
		songs := testSongs()[:n]
		for _, s := range songs {
			s := s
			previous, _ := Previous(songs, &s)
			if back, _ := Next(songs, &previous); back.ID != s.ID {
				t.Errorf("n=%d: Next(Previous(%d)) = %d", n, s.ID, back.ID)
			}
			next, _ := Next(songs, &s)
			if back, _ := Previous(songs, &next); back.ID != s.ID {
				t.Errorf("n=%d: Previous(Next(%d)) = %d", n, s.ID, back.ID)
			}
		}
	}
}

func TestNextPreviousSingleton(t *testing.T) {
	songs := testSongs()[:1]
	current := songs[0]

	if next, ok := Next(songs, &current); !ok || next.ID != current.ID {
		t.Errorf("Next на списке из одного элемента вернул %d", next.ID)
	}
	if previous, ok := Previous(songs, &current); !ok || previous.ID != current.ID {
		t.Errorf("Previous на списке из одного элемента вернул %d", previous.ID)
	}
}

func TestNextPreviousEmpty(t *testing.T) {
	current := testSongs()[0]
	if _, ok := Next(nil, &current); ok {
		t.Error("Next на пустом списке должен вернуть ok == false")
	}
	if _, ok := Previous(nil, &current); ok {
		t.Error("Previous на пустом списке должен вернуть ok == false")
	}
}

// Текущая песня отфильтрована: Next уходит к первой, Previous к последней
func TestNextPreviousCurrentFilteredOut(t *testing.T) {
	songs := Filter(testSongs(), "", TopTracks)
	current := testSongs()[1] // ID 2 не входит в Top Tracks

	if next, _ := Next(songs, &current); next.ID != 1 {
		t.Errorf("Next для отфильтрованной песни = %d, expected 1", next.ID)
	}
	if previous, _ := Previous(songs, &current); previous.ID != 5 {
		t.Errorf("Previous для отфильтрованной песни = %d, expected 5", previous.ID)
	}

	if next, _ := Next(songs, nil); next.ID != 1 {
		t.Errorf("Next без текущей песни = %d, expected 1", next.ID)
	}
}

func TestTabNext(t *testing.T) {
	if ForYou.Next() != TopTracks {
		t.Error("После For You ожидалась Top Tracks")
	}
	if TopTracks.Next() != ForYou {
		t.Error("После Top Tracks ожидалась For You")
	}
	if ForYou.String() != "For You" || TopTracks.String() != "Top Tracks" {
		t.Errorf("Неожиданные названия вкладок: %s, %s", ForYou, TopTracks)
	}
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		input    string
		expected Tab
		wantErr  bool
	}{
		{"", ForYou, false},
		{"for-you", ForYou, false},
		{"top", TopTracks, false},
		{"Top Tracks", TopTracks, false},
		{"recent", ForYou, true},
	}

	for _, test := range tests {
		tab, err := ParseTab(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTab(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if tab != test.expected {
			t.Errorf("ParseTab(%q) = %s, expected %s", test.input, tab, test.expected)
		}
	}
}
