package domain

import "time"

// SearchView состояние выдачи номеров на главной странице
type SearchView string

const (
	// ViewCatalog поиск ещё не выполнялся, показываем весь каталог
	ViewCatalog SearchView = "catalog"
	// ViewResults поиск выполнен, есть доступные номера
	ViewResults SearchView = "results"
	// ViewNoResults поиск выполнен, доступных номеров нет
	ViewNoResults SearchView = "no_results"
)

// SearchState состояние поиска доступности в рамках сессии
type SearchState struct {
	CheckIn  time.Time       `json:"check_in"`
	CheckOut time.Time       `json:"check_out"`
	Guests   int             `json:"guests"`
	Active   bool            `json:"active"`
	Results  []AvailableRoom `json:"results,omitempty"`
	// Pending ключ параметров последнего отправленного поиска.
	// Ответ с другим ключом считается устаревшим и отбрасывается.
	Pending string `json:"pending,omitempty"`
}

// NewSearchState возвращает состояние "поиск не выполнялся"
func NewSearchState() SearchState {
	return SearchState{Guests: DefaultGuests}
}

// View вычисляет состояние выдачи
func (s *SearchState) View() SearchView {
	switch {
	case !s.Active:
		return ViewCatalog
	case len(s.Results) == 0:
		return ViewNoResults
	default:
		return ViewResults
	}
}

// HasDates returns true if check-in and check-out were picked in the search bar
func (s *SearchState) HasDates() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
}

// FindResult ищет номер среди результатов поиска
func (s *SearchState) FindResult(roomID int64) (*AvailableRoom, bool) {
	for i := range s.Results {
		if s.Results[i].ID == roomID {
			return &s.Results[i], true
		}
	}
	return nil, false
}

// Editor рабочая копия выбора услуг на шаге услуг.
// Открывается при входе на шаг и закрывается при фиксации в черновик.
type Editor struct {
	Open     bool      `json:"open"`
	Working  Selection `json:"working"`
	Catalog  []AddOn   `json:"catalog"`
	OpenedAt time.Time `json:"opened_at"`
}

// Session всё состояние одного посетителя
type Session struct {
	ID        string       `json:"id"`
	Step      Step         `json:"step"`
	Draft     BookingDraft `json:"draft"`
	Search    SearchState  `json:"search"`
	Editor    Editor       `json:"editor"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewSession создаёт пустую сессию
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      StepRoomSelection,
		Draft:     NewDraft(),
		Search:    NewSearchState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone возвращает глубокую копию сессии
func (s *Session) Clone() *Session {
	c := *s
	c.Draft = s.Draft.Clone()
	if s.Search.Results != nil {
		c.Search.Results = make([]AvailableRoom, len(s.Search.Results))
		for i, r := range s.Search.Results {
			c.Search.Results[i] = r
			c.Search.Results[i].Room = *r.Room.Clone()
		}
	}
	c.Editor.Working = s.Editor.Working.Clone()
	if s.Editor.Catalog != nil {
		c.Editor.Catalog = append([]AddOn(nil), s.Editor.Catalog...)
	}
	return &c
}
