package dto

// columns collects the SET list of a partial update. Only fields the caller
// supplied end up in the map.
type columns map[string]interface{}

func (c columns) str(name string, v *string) {
	if v != nil {
		c[name] = *v
	}
}

// nullStr writes NULL for a supplied empty string.
func (c columns) nullStr(name string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		c[name] = nil
		return
	}
	c[name] = *v
}

// nullID writes NULL for a supplied zero id.
func (c columns) nullID(name string, v *int64) {
	if v == nil {
		return
	}
	if *v == 0 {
		c[name] = nil
		return
	}
	c[name] = *v
}

func (c columns) int(name string, v *int) {
	if v != nil {
		c[name] = *v
	}
}

func (c columns) int64(name string, v *int64) {
	if v != nil {
		c[name] = *v
	}
}

// flag stores booleans as 0/1.
func (c columns) flag(name string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		c[name] = 1
		return
	}
	c[name] = 0
}
