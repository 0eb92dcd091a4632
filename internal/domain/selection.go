package domain

// Selection набор выбранных услуг. Порядок не важен, каждая услуга встречается не больше одного раза.
// Все методы возвращают новый набор и не изменяют исходный.
type Selection []SelectedAddOn

// Contains returns true if the add-on is selected
func (s Selection) Contains(addOnID int64) bool {
	return s.index(addOnID) >= 0
}

// Quantity возвращает выбранное количество услуги или 0, если она не выбрана
func (s Selection) Quantity(addOnID int64) int {
	if i := s.index(addOnID); i >= 0 {
		return s[i].Quantity
	}
	return 0
}

// Toggle добавляет услугу с количеством 1 или полностью убирает её, если она уже выбрана
func (s Selection) Toggle(addOn AddOn) Selection {
	if i := s.index(addOn.ID); i >= 0 {
		out := s.Clone()
		return append(out[:i], out[i+1:]...)
	}
	out := s.Clone()
	return append(out, SelectedAddOn{AddOn: addOn, Quantity: 1})
}

// Increment увеличивает количество на единицу.
// Если услуга не выбрана или достигнут максимум, ничего не происходит.
func (s Selection) Increment(addOnID int64) Selection {
	out := s.Clone()
	i := out.index(addOnID)
	if i < 0 {
		return out
	}
	next := out[i].Quantity + 1
	if limit, ok := out[i].AddOn.QuantityLimit(); ok && next > limit {
		return out
	}
	out[i].Quantity = next
	return out
}

// Decrement уменьшает количество на единицу, но не ниже 1.
// Позиция никогда не удаляется при достижении нижней границы.
func (s Selection) Decrement(addOnID int64) Selection {
	out := s.Clone()
	i := out.index(addOnID)
	if i < 0 || out[i].Quantity <= 1 {
		return out
	}
	out[i].Quantity--
	return out
}

// Total сумма по всем позициям
func (s Selection) Total() int64 {
	var total int64
	for _, item := range s {
		total += item.LineTotal()
	}
	return total
}

// Clone возвращает независимую копию набора
func (s Selection) Clone() Selection {
	if s == nil {
		return Selection{}
	}
	out := make(Selection, len(s))
	for i, item := range s {
		out[i] = item
		if item.AddOn.MaxQuantity != nil {
			v := *item.AddOn.MaxQuantity
			out[i].AddOn.MaxQuantity = &v
		}
		if item.AddOn.ImageURL != nil {
			v := *item.AddOn.ImageURL
			out[i].AddOn.ImageURL = &v
		}
	}
	return out
}

func (s Selection) index(addOnID int64) int {
	for i := range s {
		if s[i].AddOn.ID == addOnID {
			return i
		}
	}
	return -1
}
