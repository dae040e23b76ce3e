package gateway

import "context"

type GatewayHandler interface {
	Forward(ctx context.Context, forwardParameter ForwardModel) (ForwardResult, error)
}
