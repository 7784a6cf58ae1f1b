package csvfile

// LoadHotelTable reads the hotel file and enforces the name-column rule:
// "name" must exist, with "Name" accepted and renamed to the canonical
// spelling. Errors here are startup-fatal; the service cannot run without
// its catalog.
func LoadHotelTable(path string) (*Table, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if !t.HasColumn("name") {
		if !t.HasColumn("Name") {
			return nil, &MissingColumnError{Path: path, Column: "name"}
		}
		t.Rename("Name", "name")
	}
	return t, nil
}
