package controller

// ModalState is which auth modal is showing. At most one is open.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalLogin
	ModalRegister
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalLogin:
		return "login"
	case ModalRegister:
		return "register"
	default:
		return "unknown"
	}
}

type modalAction int

const (
	openLogin modalAction = iota
	switchToRegister
	switchToLogin
	closeLogin
	closeRegister
	authSucceeded
)

var modalTransitions = map[ModalState]map[modalAction]ModalState{
	ModalClosed: {
		openLogin: ModalLogin,
	},
	ModalLogin: {
		openLogin:        ModalLogin,
		switchToRegister: ModalRegister,
		closeLogin:       ModalClosed,
		authSucceeded:    ModalClosed,
	},
	ModalRegister: {
		switchToLogin: ModalLogin,
		closeRegister: ModalClosed,
		authSucceeded: ModalClosed,
	},
}

// next returns the state after a, and false when a does not apply in s.
func (s ModalState) next(a modalAction) (ModalState, bool) {
	to, ok := modalTransitions[s][a]
	if !ok {
		return s, false
	}
	return to, true
}
