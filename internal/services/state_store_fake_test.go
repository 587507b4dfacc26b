package services

import "menodiary/internal/models"

// memStore keeps the document in memory for service tests. Load hands
// out a copy of the logs map, mimicking a fresh decode per call.
type memStore struct {
	state    models.AppState
	saves    int
	clearErr error
}

func newMemStore() *memStore {
	return &memStore{state: models.NewAppState()}
}

func (store *memStore) Load() models.AppState {
	logs := make(map[string]models.DailyLog, len(store.state.Logs))
	for date, entry := range store.state.Logs {
		logs[date] = entry
	}
	return models.AppState{Profile: store.state.Profile, Logs: logs}
}

func (store *memStore) Save(state models.AppState) {
	store.state = state
	store.saves++
}

func (store *memStore) Clear() error {
	if store.clearErr != nil {
		return store.clearErr
	}
	store.state = models.NewAppState()
	return nil
}
