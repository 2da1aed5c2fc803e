//go:build !tremo

package platform

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"tremo-go/app/classc"
	"tremo-go/drivers/gpio"
	"tremo-go/drivers/rcc"
	"tremo-go/errcode"
	"tremo-go/internal/platform/setups"
	"tremo-go/mmio"
	"tremo-go/regmap"
)

func simBoard(t *testing.T, plan setups.Plan) (*Board, *mmio.Bank, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	bank := mmio.NewBank()
	Simulate(bank, out)
	b, err := New(bank, plan, mmio.WithWait(mmio.Bounded(simPolls)))
	if err != nil {
		t.Fatal(err)
	}
	b.Delay = nil
	return b, bank, out
}

func TestOpenSimBoots(t *testing.T) {
	out := &bytes.Buffer{}
	b, _, err := OpenSim(out)
	if err != nil {
		t.Fatalf("OpenSim: %v", err)
	}
	if got := out.String(); got != "boot\r\n" {
		t.Fatalf("log = %q, want boot", got)
	}
	for _, p := range append([]rcc.Peripheral{rcc.UART0}, bootClocks...) {
		if !b.RCC.PeripheralClkEnabled(p) {
			t.Errorf("peripheral %d not clocked", p)
		}
	}
	u := b.UART[0]
	if !u.Enabled() {
		t.Fatal("log uart disabled")
	}
	if baud := u.BaudRate(); baud < 114_000 || baud > 116_500 {
		t.Fatalf("baud = %d", baud)
	}
	for _, pin := range []uint8{0, 1} {
		if m := b.GPIO[gpio.PortB].IOMux(pin); m != 1 {
			t.Errorf("pb%d mux = %d, want 1", pin, m)
		}
	}
}

func TestInitOrder(t *testing.T) {
	b, bank, _ := simBoard(t, setups.Selected)
	var calls []string
	b.Delay = func(time.Duration) { calls = append(calls, "delay") }
	b.LowPower = func() {
		calls = append(calls, "lpm")
		if bank.Touched(regmap.UART0_BASE + regmap.UART_CR) {
			t.Error("log uart touched before low-power hook")
		}
	}
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	if strings.Join(calls, ",") != "delay,lpm" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestInitI2C(t *testing.T) {
	plan := setups.Selected
	plan.I2C = []setups.I2CPlan{{N: 0, SCL: "pa14", SDA: "pa15", Mux: 3, Hz: 100_000}}
	b, _, _ := simBoard(t, plan)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	if !b.RCC.PeripheralClkEnabled(rcc.I2C0) {
		t.Fatal("i2c0 not clocked")
	}
	for _, pin := range []uint8{14, 15} {
		if m := b.GPIO[gpio.PortA].IOMux(pin); m != 3 {
			t.Errorf("pa%d mux = %d, want 3", pin, m)
		}
	}
}

func TestInitRejects(t *testing.T) {
	cases := []struct {
		name string
		edit func(*setups.Plan)
		want errcode.Code
	}{
		{"log index", func(p *setups.Plan) { p.Log.N = 7 }, errcode.UnknownPort},
		{"log pin", func(p *setups.Plan) { p.Log.TX = "pz1" }, errcode.UnknownPort},
		{"i2c index", func(p *setups.Plan) { p.I2C = []setups.I2CPlan{{N: 5}} }, errcode.UnknownPort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := setups.Selected
			tc.edit(&plan)
			b, _, _ := simBoard(t, plan)
			if err := b.Init(); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %s", err, tc.want)
			}
		})
	}
}

func TestPayloadSelection(t *testing.T) {
	plan := setups.Selected
	b, err := New(mmio.NewBank(), plan)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Payload().(classc.Fixed); !ok {
		t.Fatalf("payload = %T, want fixed frame", b.Payload())
	}
	for _, sensor := range []string{"shtc3", "aht20"} {
		b.Plan.Sensor = sensor
		if _, ok := b.Payload().(*classc.Climate); !ok {
			t.Fatalf("%s payload = %T, want climate", sensor, b.Payload())
		}
	}
}

func TestConsole(t *testing.T) {
	b, _, err := OpenSim(nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	c := b.Console(&out)
	if err := c.Exec("uart 0"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "uart0 en true") {
		t.Fatalf("uart 0 = %q", out.String())
	}
	out.Reset()
	if err := c.Exec("clk"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "24000000 Hz") {
		t.Fatalf("clk = %q", out.String())
	}
	out.Reset()
	b.Rx.WriteFrom([]byte("ab"))
	if err := c.Exec("rx"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "rx buffered 2 dropped 0\r\n" {
		t.Fatalf("rx = %q", out.String())
	}
}

func TestInputReadsRx(t *testing.T) {
	b, err := New(mmio.NewBank(), setups.Selected)
	if err != nil {
		t.Fatal(err)
	}
	b.Rx.WriteFrom([]byte("clk\r"))
	in := b.Input(nil)
	var got []byte
	for {
		c, err := in.ReadByte()
		if err != nil {
			break
		}
		got = append(got, c)
	}
	if string(got) != "clk\r" {
		t.Fatalf("input = %q", got)
	}
}
