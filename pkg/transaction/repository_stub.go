package transaction

import "context"

type StubRepository struct {
	Transactions []Transaction

	// FailAddAfter makes Add fail once the collection holds that many
	// records. Negative means never fail.
	FailAddAfter int
	FailAddErr   error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{Transactions: []Transaction{}, FailAddAfter: -1}
}

func (s *StubRepository) Load(_ context.Context) ([]Transaction, error) {
	return s.Transactions, nil
}

func (s *StubRepository) GetAll(_ context.Context) ([]Transaction, error) {
	return s.Transactions, nil
}

func (s *StubRepository) Add(_ context.Context, t Transaction) ([]Transaction, error) {
	if s.FailAddAfter >= 0 && len(s.Transactions) >= s.FailAddAfter {
		return nil, s.FailAddErr
	}
	s.Transactions = append(s.Transactions, t)
	return s.Transactions, nil
}

func (s *StubRepository) Update(_ context.Context, t Transaction) ([]Transaction, error) {
	for i := range s.Transactions {
		if s.Transactions[i].ID == t.ID {
			s.Transactions[i] = t
			break
		}
	}
	return s.Transactions, nil
}

func (s *StubRepository) Delete(_ context.Context, id string) ([]Transaction, error) {
	next := make([]Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.Transactions = next
	return s.Transactions, nil
}

func (s *StubRepository) Clear(_ context.Context) error {
	s.Transactions = []Transaction{}
	return nil
}
