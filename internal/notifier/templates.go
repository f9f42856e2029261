package notifier

import "github.com/Sokolov-Vladisl/Aston-HW-6/internal/events"

// template is the fixed subject/body pair for one event type. The body takes
// the user name as its only interpolation parameter.
type template struct {
	subject string
	body    string
}

var templates = map[events.EventType]template{
	events.UserCreated: {
		subject: "Добро пожаловать!",
		body:    "Здравствуйте, %s! Ваш аккаунт был создан.",
	},
	events.UserDeleted: {
		subject: "Аккаунт удален",
		body:    "Здравствуйте, %s! Ваш аккаунт был удален.",
	},
}
