package microdom

// Attr is a single element attribute.
type Attr struct {
	Name  QName
	Value string
}

// attrList keeps attributes in insertion order. Setting an existing name
// updates the value in place; order only changes on remove + re-add.
type attrList struct {
	attrs []Attr
}

func (a *attrList) index(name QName) int {
	for i, at := range a.attrs {
		if at.Name == name {
			return i
		}
	}
	return -1
}

func (a *attrList) set(name QName, value string) {
	if i := a.index(name); i >= 0 {
		a.attrs[i].Value = value
		return
	}
	a.attrs = append(a.attrs, Attr{Name: name, Value: value})
}

func (a *attrList) get(name QName) (string, bool) {
	if i := a.index(name); i >= 0 {
		return a.attrs[i].Value, true
	}
	return "", false
}

func (a *attrList) remove(name QName) bool {
	i := a.index(name)
	if i < 0 {
		return false
	}
	a.attrs = append(a.attrs[:i], a.attrs[i+1:]...)
	return true
}

func (a *attrList) clone() attrList {
	if len(a.attrs) == 0 {
		return attrList{}
	}
	out := make([]Attr, len(a.attrs))
	copy(out, a.attrs)
	return attrList{attrs: out}
}
