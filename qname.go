package microdom

// QName is a qualified name: an optional namespace URI plus a local name.
// Prefixes are not modeled; two names are the same name exactly when both
// fields match.
type QName struct {
	Space string
	Local string
}

// Name builds a QName without a namespace.
func Name(local string) QName { return QName{Local: local} }

// NameNS builds a namespace-qualified QName.
func NameNS(space, local string) QName { return QName{Space: space, Local: local} }

// HasSpace reports whether the name carries a namespace URI.
func (q QName) HasSpace() bool { return q.Space != "" }

// String renders the name in Clark notation, "{uri}local", or just the
// local name when there is no namespace.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}
	return "{" + q.Space + "}" + q.Local
}
