package handlers

import (
	"myexplorer/domain"
)

// toChildrenResponse renders tree children; pending marks the instance nodes under watch.
func toChildrenResponse(label string, nodes []domain.Node, pending map[string]struct{}) ChildrenResponse {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNode(n, pending))
	}
	return ChildrenResponse{Label: label, Children: out}
}

func toNode(n domain.Node, pending map[string]struct{}) Node {
	switch v := n.(type) {
	case *domain.InstanceNode:
		instance := toInstanceNode(v, pending)
		return Node{Kind: NodeKindInstance, Label: v.Label(), Instance: &instance}
	case domain.ErrorNode:
		msg := v.Message
		return Node{Kind: NodeKindError, Label: v.Label(), Message: &msg}
	case domain.PlaceholderNode:
		msg := v.Message
		return Node{Kind: NodeKindPlaceholder, Label: v.Label(), Message: &msg}
	}
	return Node{Kind: string(n.Kind()), Label: n.Label()}
}

func toInstanceNode(n *domain.InstanceNode, pending map[string]struct{}) InstanceNode {
	s := n.Summary()
	_, watched := pending[s.InstanceID]
	return InstanceNode{
		InstanceId: s.InstanceID,
		Name:       s.Name,
		Status:     string(s.Status),
		Pending:    watched,
	}
}

func toPendingResponse(ids []string) PendingResponse {
	if ids == nil {
		ids = []string{}
	}
	return PendingResponse{InstanceIds: ids}
}

func toStaleResponse(nodes []domain.StaleNode) StaleResponse {
	out := make([]StaleNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, StaleNode{
			InstanceId: n.InstanceID,
			Name:       n.Name,
			Status:     string(n.Status),
			MarkedAt:   n.MarkedAt,
		})
	}
	return StaleResponse{Nodes: out}
}
