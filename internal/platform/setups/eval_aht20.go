//go:build eval_aht20 && !eval_shtc3

package setups

// Selected is the evaluation board with an AHT20 on I2C0.
var Selected = Plan{
	Name: "asr6601cb_eval_aht20",
	Log:  UARTPlan{N: 0, TX: "pb1", RX: "pb0", Mux: 1, Baud: 115_200},
	I2C: []I2CPlan{
		{N: 0, SCL: "pa14", SDA: "pa15", Mux: 3, Hz: 100_000},
	},
	Sensor: "aht20",
}
