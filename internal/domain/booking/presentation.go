package booking

// StatusPresentation maps a status string to the label and color class the
// clients render. Bookings and orders share the table.
type StatusPresentation struct {
	Label      string `json:"label"`
	ColorClass string `json:"color_class"`
}

var statusPresentations = map[string]StatusPresentation{
	"pending":   {Label: "Pendente", ColorClass: "bg-yellow-500/10 text-yellow-400 border-yellow-500/20"},
	"confirmed": {Label: "Confirmado", ColorClass: "bg-blue-500/10 text-blue-400 border-blue-500/20"},
	"completed": {Label: "Concluído", ColorClass: "bg-green-500/10 text-green-400 border-green-500/20"},
	"cancelled": {Label: "Cancelado", ColorClass: "bg-red-500/10 text-red-400 border-red-500/20"},
	"paid":      {Label: "Pago", ColorClass: "bg-green-500/10 text-green-400 border-green-500/20"},
	"refunded":  {Label: "Reembolsado", ColorClass: "bg-gray-500/10 text-gray-400 border-gray-500/20"},
}

// PresentStatus never fails: unknown statuses get the pending presentation.
func PresentStatus(status string) StatusPresentation {
	if p, ok := statusPresentations[status]; ok {
		return p
	}
	return statusPresentations["pending"]
}
