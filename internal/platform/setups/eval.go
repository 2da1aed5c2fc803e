//go:build !eval_shtc3 && !eval_aht20

package setups

// Selected is the ASR6601CB evaluation board with nothing on the I2C header.
var Selected = Plan{
	Name: "asr6601cb_eval",
	Log:  UARTPlan{N: 0, TX: "pb1", RX: "pb0", Mux: 1, Baud: 115_200},
}
