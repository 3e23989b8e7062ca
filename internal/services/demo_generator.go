package services

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	demoDepositStep     = 500
	demoMinDepositSteps = 2
	demoMaxDepositSteps = 400
)

// DemoCustomerGenerator draws names and opening deposits from gofakeit.
type DemoCustomerGenerator struct {
	faker *gofakeit.Faker
}

// NewDemoCustomerGenerator returns a generator. A zero seed picks a random one;
// any other seed gives a repeatable sequence.
func NewDemoCustomerGenerator(seed uint64) DemoCustomerGeneratorInterface {
	return &DemoCustomerGenerator{
		faker: gofakeit.New(seed),
	}
}

func (g *DemoCustomerGenerator) Name() string {
	return g.faker.FirstName() + " " + g.faker.LastName()
}

// InitialDeposit returns a round amount between 1,000 and 2,00,000.
func (g *DemoCustomerGenerator) InitialDeposit() decimal.Decimal {
	steps := g.faker.IntRange(demoMinDepositSteps, demoMaxDepositSteps)
	return decimal.NewFromInt(int64(steps * demoDepositStep))
}
