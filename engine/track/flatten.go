package track

import "sort"

// JointResolver maps a (parent body part, child body part) pair to the name
// of the joint driving that pair, or reports that no such joint exists.
type JointResolver func(parentName, childName string) (string, bool)

// flattenFrame is one pending (node, parent) pair on the flatten worklist.
type flattenFrame struct {
	parent string
	name   string
	node   *PoseNode
}

// Flatten walks a keyframe hierarchy and produces the flat joint-name →
// transform mapping for that instant. It runs once per keyframe at session
// start, never per tick.
//
// The walk uses an explicit worklist rather than recursion, so rig depth is
// bounded only by memory, and visits children in ascending name order, making
// traversal (and the last-write-wins outcome when a joint name recurs)
// deterministic. A part whose pair resolves to no joint contributes nothing
// itself but its children are still visited, and any child value that is not
// a *PoseNode is skipped as a non-hierarchy entry.
//
// Parameters:
//   - hierarchy: the keyframe's root mapping (body-part name → *PoseNode)
//   - resolve: the joint mapper for (parent, child) pairs
//
// Returns:
//   - Pose: joint name → target transform for this keyframe
func Flatten(hierarchy map[string]any, resolve JointResolver) Pose {
	pose := make(Pose)
	if len(hierarchy) == 0 || resolve == nil {
		return pose
	}

	stack := make([]flattenFrame, 0, len(hierarchy))
	pushChildren(&stack, "", hierarchy)

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if joint, ok := resolve(frame.parent, frame.name); ok && frame.node.Transform != nil {
			pose[joint] = *frame.node.Transform
		}

		pushChildren(&stack, frame.name, frame.node.Children)
	}

	return pose
}

// pushChildren pushes the structured entries of children onto the worklist in
// descending name order, so popping yields ascending order. Non-*PoseNode
// values are skipped.
func pushChildren(stack *[]flattenFrame, parent string, children map[string]any) {
	if len(children) == 0 {
		return
	}

	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		node, ok := children[name].(*PoseNode)
		if !ok || node == nil {
			continue
		}
		*stack = append(*stack, flattenFrame{parent: parent, name: name, node: node})
	}
}
