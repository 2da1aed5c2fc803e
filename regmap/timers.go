package regmap

import "unsafe"

// TIMER_Type is a general-purpose timer (TIMER0..TIMER3).
type TIMER_Type struct {
	CR1   uint32
	CR2   uint32
	SMCR  uint32
	DIER  uint32
	SR    uint32
	EGR   uint32
	CCMR1 uint32
	CCMR2 uint32
	CCER  uint32
	CNT   uint32
	PSC   uint32
	ARR   uint32
	_     uint32
	CCR0  uint32
	CCR1  uint32
	CCR2  uint32
	CCR3  uint32
	_     uint32
	DCR   uint32
	DMAR  uint32
	OR    uint32
}

const (
	TIMER_CR1  = unsafe.Offsetof(TIMER_Type{}.CR1)
	TIMER_DIER = unsafe.Offsetof(TIMER_Type{}.DIER)
	TIMER_SR   = unsafe.Offsetof(TIMER_Type{}.SR)
	TIMER_EGR  = unsafe.Offsetof(TIMER_Type{}.EGR)
	TIMER_CNT  = unsafe.Offsetof(TIMER_Type{}.CNT)
	TIMER_PSC  = unsafe.Offsetof(TIMER_Type{}.PSC)
	TIMER_ARR  = unsafe.Offsetof(TIMER_Type{}.ARR)
	TIMER_CCR0 = unsafe.Offsetof(TIMER_Type{}.CCR0)
	TIMER_DCR  = unsafe.Offsetof(TIMER_Type{}.DCR)
	TIMER_OR   = unsafe.Offsetof(TIMER_Type{}.OR)
)

var (
	_ = [1]struct{}{}[TIMER_EGR-0x14]
	_ = [1]struct{}{}[TIMER_OR-0x50]
)

// BSTIMER_Type is a basic timer.
type BSTIMER_Type struct {
	CR1  uint32
	CR2  uint32
	_    uint32
	DIER uint32
	SR   uint32
	EGR  uint32
	_    [3]uint32
	CNT  uint32
	PSC  uint32
	ARR  uint32
}

const (
	BSTIMER_CR1  = unsafe.Offsetof(BSTIMER_Type{}.CR1)
	BSTIMER_DIER = unsafe.Offsetof(BSTIMER_Type{}.DIER)
	BSTIMER_SR   = unsafe.Offsetof(BSTIMER_Type{}.SR)
	BSTIMER_CNT  = unsafe.Offsetof(BSTIMER_Type{}.CNT)
	BSTIMER_PSC  = unsafe.Offsetof(BSTIMER_Type{}.PSC)
	BSTIMER_ARR  = unsafe.Offsetof(BSTIMER_Type{}.ARR)
)

var _ = [1]struct{}{}[BSTIMER_CNT-0x24]

// LPTIMER_Type is a low-power timer.
type LPTIMER_Type struct {
	ISR  uint32
	ICR  uint32
	IER  uint32
	CFGR uint32
	CR   uint32
	CMP  uint32
	ARR  uint32
	CNT  uint32
	CSR  uint32
	SR1  uint32
}

const (
	LPTIMER_ISR  = unsafe.Offsetof(LPTIMER_Type{}.ISR)
	LPTIMER_CFGR = unsafe.Offsetof(LPTIMER_Type{}.CFGR)
	LPTIMER_CR   = unsafe.Offsetof(LPTIMER_Type{}.CR)
	LPTIMER_CMP  = unsafe.Offsetof(LPTIMER_Type{}.CMP)
	LPTIMER_ARR  = unsafe.Offsetof(LPTIMER_Type{}.ARR)
	LPTIMER_CNT  = unsafe.Offsetof(LPTIMER_Type{}.CNT)
	LPTIMER_SR1  = unsafe.Offsetof(LPTIMER_Type{}.SR1)
)
