package rcc

import (
	"tremo-go/mmio"
	"tremo-go/regmap"
)

// EnableOscillator starts or stops an oscillator. RCO48M, RCO4M and XO32M
// wait for their ready flag to follow; the others are plain analog writes.
// Unknown oscillators are ignored.
func (r *RCC) EnableOscillator(osc Oscillator, on bool) error {
	switch osc {
	case RCO48M:
		r.ana06.Enable(regmap.ANA_06_RCO48M_PD_Msk, !on)
		return mmio.Until(r.wait, "rcc.rco48m", r.afecRaw, regmap.AFEC_RAW_SR_RCO24M_READY_Msk, on)

	case RCO32K:
		r.ana02.Enable(regmap.ANA_02_RCO32K_PD_Msk, !on)

	case XO32K:
		r.ana02.Enable(regmap.ANA_02_XO32K_PD_Msk, !on)

	case XO24M:
		if on {
			r.ana06.Set(regmap.ANA_06_XO24M_STATE_Msk, regmap.ANA_06_XO24M_EN_Msk)
		} else {
			r.ana06.Set(regmap.ANA_06_XO24M_STATE_Msk, regmap.ANA_06_XO24M_PD_Msk)
		}

	case XO32M:
		// The crystal sits in the radio block and needs its bus clock.
		if err := r.EnablePeripheralClk(LORA, true); err != nil {
			return err
		}
		if on {
			if !r.loraCR1.Has(regmap.LORAC_CR1_XO32M_CFG_Msk) {
				r.loraCR1.Enable(regmap.LORAC_CR1_XO32M_CFG_Msk, true) // nreset
				r.loraCR1.Enable(regmap.LORAC_CR1_XO32M_PD_Msk, false) // por
			}
			r.loraCR1.Enable(regmap.LORAC_CR1_XO32M_EN_Msk, true)
		} else {
			r.loraCR1.Enable(regmap.LORAC_CR1_XO32M_EN_Msk, false)
		}
		return mmio.Until(r.wait, "rcc.xo32m", r.loraSR, regmap.LORAC_SR_XO32M_READY, on)

	case RCO4M:
		r.ana06.Enable(regmap.ANA_06_RCO4M_PD_Msk, !on)
		return mmio.Until(r.wait, "rcc.rco4m", r.afecRaw, regmap.AFEC_RAW_SR_RCO4M_READY_Msk, on)
	}
	return nil
}

// OscillatorReady reports the ready flag for oscillators that have one.
func (r *RCC) OscillatorReady(osc Oscillator) (ready, known bool) {
	switch osc {
	case RCO48M:
		return r.afecRaw.Has(regmap.AFEC_RAW_SR_RCO24M_READY_Msk), true
	case RCO4M:
		return r.afecRaw.Has(regmap.AFEC_RAW_SR_RCO4M_READY_Msk), true
	case XO32M:
		return r.loraSR.Has(regmap.LORAC_SR_XO32M_READY), true
	}
	return false, false
}
