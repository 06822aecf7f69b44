package permission

import "eventura/pkg/apperror"

// Evaluate 纯权限判定函数
// 规则按序匹配，首个命中生效：
//  1. SUPER_ADMIN 无条件放行
//  2. ADMIN 且为资源归属者 → 放行
//  3. ADMIN 但非归属者 → 拒绝（只能操作自己组织的活动）
//  4. USER → 拒绝
//
// action 为人类可读的动作名（如 "update"、"delete"），会被插入拒绝文案。
// 无副作用；拒绝以 apperror.KindForbidden 返回。
func Evaluate(systemRole, actorID, ownerID, action string) error {
	switch systemRole {
	case "SUPER_ADMIN":
		return nil
	case "ADMIN":
		if actorID == ownerID {
			return nil
		}
		return apperror.Forbiddenf("You can only %s events that you organize", action)
	default:
		return apperror.Forbiddenf("You do not have permission to %s events", action)
	}
}

// IsAdmin 是否具有管理员及以上授权级别
func IsAdmin(systemRole string) bool {
	return systemRole == "ADMIN" || systemRole == "SUPER_ADMIN"
}

// IsSuperAdmin 是否为超级管理员
func IsSuperAdmin(systemRole string) bool {
	return systemRole == "SUPER_ADMIN"
}
