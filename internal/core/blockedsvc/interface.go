package blockedsvc

import "context"

type EditorHandler interface {
	Load(ctx context.Context) (State, error)
	Toggle(serviceId string) (State, error)
	Save(ctx context.Context) (State, error)
	State() State
}
