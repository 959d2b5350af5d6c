package client

import "errors"

// Kind - класс исхода операции
type Kind int

const (
	KindOK          Kind = iota + 1 // сервер выполнил запрос
	KindRejected                    // сервер отклонил запрос, см. Reason
	KindUnreachable                 // обмен с сервером не состоялся
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindRejected:
		return "rejected"
	case KindUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Reason - причина отказа сервера
type Reason int

const (
	ReasonNone           Reason = iota
	ReasonTooShort              // 414 на /api/add
	ReasonStridNotUnique        // 409 на /api/add/{strid}
	ReasonNotFound              // 404 на /api/stats/{strid}
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonTooShort:
		return "link too short"
	case ReasonStridNotUnique:
		return "string id already used"
	case ReasonNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Result - исход операции клиента.
// Value заполнено только для KindOK, Reason только для KindRejected, Err только для KindUnreachable
type Result[T any] struct {
	Kind   Kind
	Value  T
	Reason Reason
	Err    error
}

// ErrProtocol - ответ сервера не содержит ожидаемых полей
var ErrProtocol = errors.New("server error")

func ok[T any](v T) Result[T] {
	return Result[T]{Kind: KindOK, Value: v}
}

func rejected[T any](reason Reason) Result[T] {
	return Result[T]{Kind: KindRejected, Reason: reason}
}

func unreachable[T any](err error) Result[T] {
	return Result[T]{Kind: KindUnreachable, Err: err}
}
