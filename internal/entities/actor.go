package entities

type ActorKind string

const (
	ActorManufacturer ActorKind = "manufacturer"
	ActorBuyer        ActorKind = "buyer"
)

func (k ActorKind) String() string {
	return string(k)
}

// Actor is an authenticated identity extracted from a verified token.
type Actor struct {
	ID   int64
	Kind ActorKind
	Name string
}
