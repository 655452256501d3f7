package rig

// jointKey identifies one parent/child body-part pair in a rig layout.
type jointKey struct {
	parent, child string
}

// classicJointTable is the coarse humanoid layout: a single torso segment
// with one joint per limb. The root part itself has no driving joint; the
// RootJoint drives the torso relative to the root part.
var classicJointTable = map[jointKey]string{
	{"Root", "Torso"}:     "RootJoint",
	{"Torso", "Head"}:     "Neck",
	{"Torso", "LeftArm"}:  "LeftShoulder",
	{"Torso", "RightArm"}: "RightShoulder",
	{"Torso", "LeftLeg"}:  "LeftHip",
	{"Torso", "RightLeg"}: "RightHip",
}

// segmentedJointTable is the fine-grained humanoid layout: the torso is split
// into lower and upper segments joined at the waist, and each limb has three
// joints (shoulder/elbow/wrist, hip/knee/ankle).
var segmentedJointTable = map[jointKey]string{
	{"Root", "LowerTorso"}:             "RootHinge",
	{"LowerTorso", "UpperTorso"}:       "Waist",
	{"UpperTorso", "Head"}:             "Neck",
	{"UpperTorso", "LeftUpperArm"}:     "LeftShoulder",
	{"LeftUpperArm", "LeftLowerArm"}:   "LeftElbow",
	{"LeftLowerArm", "LeftHand"}:       "LeftWrist",
	{"UpperTorso", "RightUpperArm"}:    "RightShoulder",
	{"RightUpperArm", "RightLowerArm"}: "RightElbow",
	{"RightLowerArm", "RightHand"}:     "RightWrist",
	{"LowerTorso", "LeftUpperLeg"}:     "LeftHip",
	{"LeftUpperLeg", "LeftLowerLeg"}:   "LeftKnee",
	{"LeftLowerLeg", "LeftFoot"}:       "LeftAnkle",
	{"LowerTorso", "RightUpperLeg"}:    "RightHip",
	{"RightUpperLeg", "RightLowerLeg"}: "RightKnee",
	{"RightLowerLeg", "RightFoot"}:     "RightAnkle",
}

// ResolveJoint returns the name of the joint that drives a child body part
// relative to its parent, looked up across both built-in rig layouts.
// Pure and deterministic: the same pair always yields the same result.
//
// A pair absent from both tables is not an error — it means that parent/child
// connection has no driving joint (the root part, or a passthrough segment),
// and the second return is false.
//
// Parameters:
//   - parentName: the parent body-part name ("" at the hierarchy root)
//   - childName: the child body-part name
//
// Returns:
//   - string: the joint name, or "" when no joint drives this pair
//   - bool: true if a joint mapping exists for the pair
func ResolveJoint(parentName, childName string) (string, bool) {
	key := jointKey{parent: parentName, child: childName}
	if joint, ok := classicJointTable[key]; ok {
		return joint, true
	}
	if joint, ok := segmentedJointTable[key]; ok {
		return joint, true
	}
	return "", false
}
