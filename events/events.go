package events

const (
	TypePowerAction = "session.power"
)

type Event struct {
	Type string
	Data any
}
