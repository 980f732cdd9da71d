package activity

type EntryType string

const (
	EntryTypeAnimalRegistered  EntryType = "ANIMAL_REGISTERED"
	EntryTypeAnimalUpdated     EntryType = "ANIMAL_UPDATED"
	EntryTypeAnimalDeleted     EntryType = "ANIMAL_DELETED"
	EntryTypeAnimalTransferred EntryType = "ANIMAL_TRANSFERRED"
	EntryTypeAnimalReleased    EntryType = "ANIMAL_RELEASED"
	EntryTypeWeightAlert       EntryType = "WEIGHT_ALERT"
	EntryTypeOwnerRegistered   EntryType = "OWNER_REGISTERED"
	EntryTypeOwnerUpdated      EntryType = "OWNER_UPDATED"
	EntryTypeOwnerActivated    EntryType = "OWNER_ACTIVATED"
	EntryTypeOwnerDeactivated  EntryType = "OWNER_DEACTIVATED"
	EntryTypeOwnerDeleted      EntryType = "OWNER_DELETED"
)
