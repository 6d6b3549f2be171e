package account

import "entregas/internal/entities"

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}
	return &entities.Account{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		AboutMe:      a.AboutMe,
		LastSeen:     a.LastSeen,
	}
}

func FromDomainModify(m *entities.AccountModify) *AccountModifyDB {
	if m == nil {
		return nil
	}
	return &AccountModifyDB{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AboutMe:      m.AboutMe,
		LastSeen:     m.LastSeen,
	}
}
