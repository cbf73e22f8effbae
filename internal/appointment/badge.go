package appointment

type Badge struct {
	Style string
	Label string
}

var statusStyles = map[Status]string{
	StatusConfirmed: "bg-green-100 text-green-800 border-green-200",
	StatusPending:   "bg-yellow-100 text-yellow-800 border-yellow-200",
	StatusCompleted: "bg-blue-100 text-blue-800 border-blue-200",
	StatusCancelled: "bg-red-100 text-red-800 border-red-200",
}

var statusLabels = map[Status]string{
	StatusConfirmed: "מאושר",
	StatusPending:   "ממתין",
	StatusCompleted: "הושלם",
	StatusCancelled: "בוטל",
}

// StatusBadge maps a status to its badge. Unknown statuses get the pending
// style and keep their raw value as the label.
func StatusBadge(status string) Badge {
	s := Status(status)
	style, ok := statusStyles[s]
	if !ok {
		style = statusStyles[StatusPending]
	}
	label, ok := statusLabels[s]
	if !ok {
		label = status
	}
	return Badge{Style: style, Label: label}
}

func (s Status) Valid() bool {
	_, ok := statusStyles[s]
	return ok
}
