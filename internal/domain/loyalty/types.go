package loyalty

// EntryKind is the direction of a ledger entry.
type EntryKind string

const (
	KindEarn EntryKind = "earn"
	KindUse  EntryKind = "use"
)

func (k EntryKind) String() string {
	return string(k)
}

func (k EntryKind) IsValid() bool {
	return k == KindEarn || k == KindUse
}
