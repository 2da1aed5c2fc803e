package setups

// Plan specifies the wiring and operating parameters chosen for a board.
// The platform consumes it during bring-up.
type Plan struct {
	Name string `json:"name"`

	Log UARTPlan  `json:"log"`
	I2C []I2CPlan `json:"i2c,omitempty"`

	// Sensor names the payload source on I2C bus 0: "" for the fixed test
	// frame, "shtc3" or "aht20" for temperature and humidity.
	Sensor string `json:"sensor,omitempty"`
}

type UARTPlan struct {
	N    int    `json:"n"`    // UART index
	TX   string `json:"tx"`   // pin name, e.g. "pb1"
	RX   string `json:"rx"`   // pin name
	Mux  uint8  `json:"mux"`  // alternate function for both pins
	Baud uint32 `json:"baud"` // initial baud, 8N1
}

type I2CPlan struct {
	N   int    `json:"n"`
	SDA string `json:"sda"`
	SCL string `json:"scl"`
	Mux uint8  `json:"mux"`
	Hz  uint32 `json:"hz"`
}
