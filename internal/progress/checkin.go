package progress

// RecordCheckin updates the body check-in fields. Nil means "leave as is";
// the fields carry no XP and are cleared by ResetWeek.
func (t *Tracker) RecordCheckin(weight, waist *float64, energy *int) {
	if weight != nil {
		t.State.Weight = weight
	}
	if waist != nil {
		t.State.Waist = waist
	}
	if energy != nil {
		t.State.Energy = *energy
	}
}
