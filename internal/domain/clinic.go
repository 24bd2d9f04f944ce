package domain

// Room is a treatment room inside a clinic. Capabilities are free-form tags
// ("chair", "xray", "iv_sedation", ...) that procedures match against.
type Room struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	Capabilities []string `json:"capabilities"`
}

type Clinic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Rooms     []Room `json:"rooms"`
}

type Specialization struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
