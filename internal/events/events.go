package events

import "github.com/zenith-academy/intake/internal/models"

// OnClientCreated is called after a new client record is persisted.
// services will call this if it's set.
var OnClientCreated func(c models.Client)
