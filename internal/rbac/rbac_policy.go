package rbac

// Mentors inherit nothing from students; pengurus inherits every mentor permission.
var rolePolicy = map[string][]Permission{
	RoleStudent: {
		{ResourceAttendance, ActionRead},
		{ResourceAttendance, ActionCreate},
		{ResourceLogbook, ActionRead},
		{ResourceLogbook, ActionCreate},
		{ResourceLogbook, ActionUpdate},
		{ResourceLogbook, ActionDelete},
		{ResourceOffice, ActionRead},
	},
	RoleMentor: {
		{ResourceAttendanceReview, ActionRead},
		{ResourceAttendanceReview, ActionCreate},
		{ResourceAttendanceReview, ActionApprove},
		{ResourceLogbookReview, ActionRead},
		{ResourceSchedule, ActionRead},
		{ResourceSchedule, ActionCreate},
		{ResourceSchedule, ActionUpdate},
		{ResourceMentorship, ActionRead},
		{ResourceOffice, ActionRead},
	},
	RoleAdmin: {
		{ResourceOffice, ActionUpdate},
		{ResourceUser, ActionRead},
		{ResourceUser, ActionCreate},
		{ResourceUser, ActionUpdate},
		{ResourceUser, ActionDelete},
		{ResourceMentorship, ActionUpdate},
	},
}

var roleInheritance = [][2]string{
	{RoleAdmin, RoleMentor},
}
