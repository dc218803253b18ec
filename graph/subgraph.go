package graph

import (
	"context"
	"fmt"
)

// AddSubgraph adds a compiled graph with its own state type as a single node of g.
// in projects the parent state into the subgraph input; out folds the subgraph's
// final state back into the parent state.
func AddSubgraph[S, T any](g *StateGraph[S], name string, sub *Runnable[T], in func(S) T, out func(S, T) S) {
	g.AddNode(name, "Subgraph: "+name, func(ctx context.Context, state S) (S, error) {
		result, err := sub.Invoke(ctx, in(state))
		if err != nil {
			return state, fmt.Errorf("subgraph %s execution failed: %w", name, err)
		}
		return out(state, result), nil
	})
}
