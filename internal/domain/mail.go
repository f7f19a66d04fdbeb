package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

// AvailabilityExportMailData carries a rendered calendar export to the mail
// worker. Calendar is the full ICS payload, attached as a file on send.
type AvailabilityExportMailData struct {
	WeekLabel string `json:"weekLabel"`
	EventRows int    `json:"eventRows"`
	Calendar  string `json:"calendar"`
}
