package preferences

// Currency is a symbol/name pair from the fixed list below. The JSON field
// names (mataUang, notifikasi, opsi, waktu) are the app's original wire
// format and must stay stable for backup compatibility.
type Currency struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type NotificationTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type Notification struct {
	Enabled bool             `json:"opsi"`
	Time    NotificationTime `json:"waktu"`
}

// Preferences is a single durable document, not a collection.
type Preferences struct {
	Currency     Currency     `json:"mataUang"`
	Notification Notification `json:"notifikasi"`
}

var currencies = []Currency{
	{Symbol: "$", Name: "US Dollar"},
	{Symbol: "€", Name: "Euro"},
	{Symbol: "£", Name: "British Pound"},
	{Symbol: "¥", Name: "Japanese Yen"},
	{Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Symbol: "₹", Name: "Indian Rupee"},
}

// Currencies returns a copy of the selectable currency list.
func Currencies() []Currency {
	cp := make([]Currency, len(currencies))
	copy(cp, currencies)
	return cp
}

// CurrencyBySymbol resolves a symbol to its full definition.
func CurrencyBySymbol(symbol string) (Currency, bool) {
	for _, c := range currencies {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Currency{}, false
}

// Defaults returns the preferences applied before the user ever saved any.
func Defaults() Preferences {
	return Preferences{
		Currency:     currencies[0],
		Notification: Notification{Enabled: false, Time: NotificationTime{Hour: 20, Minute: 0}},
	}
}
