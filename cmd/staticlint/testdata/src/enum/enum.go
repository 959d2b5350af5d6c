package enum

type Kind int

const (
	KindOK Kind = iota + 1
	KindRejected
	KindUnreachable
)

type Plain int

func full(k Kind) string {
	switch k {
	case KindOK:
		return "ok"
	case KindRejected:
		return "rejected"
	case KindUnreachable:
		return "unreachable"
	}
	return ""
}

func partial(k Kind) string {
	switch k { // want "missing cases in switch of type Kind: KindUnreachable"
	case KindOK:
		return "ok"
	case KindRejected:
		return "rejected"
	}
	return ""
}

func withDefault(k Kind) string {
	switch k {
	case KindOK:
		return "ok"
	default:
		return "other"
	}
}

func grouped(k Kind) bool {
	switch k { // want "missing cases in switch of type Kind: KindOK, KindRejected"
	case KindUnreachable:
		return false
	}
	return true
}

func notEnum(p Plain) bool {
	switch p {
	case 1:
		return true
	}
	return false
}
