package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TxFunc runs inside a multi-document transaction. The context it
// receives is session-bound; every database call made with it joins the
// transaction.
type TxFunc func(ctx context.Context) error

// WithTransaction wraps fn in a session transaction. Any error aborts the
// transaction; no partial state is visible to subsequent reads. The
// request deadline carried by ctx propagates into every enclosed call,
// and deadline expiry aborts the transaction.
func WithTransaction(ctx context.Context, client *mongo.Client, fn TxFunc) error {
	session, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}
