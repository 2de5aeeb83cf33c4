package shopping

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/entities"
)

// Item mutation operations. Each one is valid only from specific states:
//
//	pending --check--> checked --verify--> verified
//	pending --verify--> verified
//	pending/checked/verified --not_purchased--> not_purchased --undo--> pending
//	checked/verified --uncheck--> pending
const (
	OpCheck        = "check"
	OpUncheck      = "uncheck"
	OpVerify       = "verify"
	OpNotPurchased = "not_purchased"
	OpUndo         = "undo"
)

var opTransitions = map[string]map[string]string{
	OpCheck: {
		entities.ItemStatePending: entities.ItemStateChecked,
	},
	OpVerify: {
		entities.ItemStatePending: entities.ItemStateVerified,
		entities.ItemStateChecked: entities.ItemStateVerified,
	},
	OpNotPurchased: {
		entities.ItemStatePending:  entities.ItemStateNotPurchased,
		entities.ItemStateChecked:  entities.ItemStateNotPurchased,
		entities.ItemStateVerified: entities.ItemStateNotPurchased,
	},
	OpUndo: {
		entities.ItemStateNotPurchased: entities.ItemStatePending,
	},
	OpUncheck: {
		entities.ItemStateChecked:  entities.ItemStatePending,
		entities.ItemStateVerified: entities.ItemStatePending,
	},
}

// applyTransition returns the state an item lands in when op runs from the
// given state, or ErrInvalidItemTransition when the graph has no such edge.
func applyTransition(op string, from string) (string, error) {
	targets, ok := opTransitions[op]
	if !ok {
		return "", domain.ErrInvalidItemTransition
	}
	to, ok := targets[from]
	if !ok {
		return "", domain.ErrInvalidItemTransition
	}
	return to, nil
}
