package repository

import "gorm.io/gorm"

// dayExpr 返回按天分组的日期表达式，适配 sqlite 与 postgres 两种方言
func dayExpr(db *gorm.DB, column string) string {
	if db == nil || db.Dialector == nil {
		return "strftime('%Y-%m-%d', " + column + ")"
	}
	switch db.Dialector.Name() {
	case "postgres":
		return "to_char(" + column + ", 'YYYY-MM-DD')"
	default:
		return "strftime('%Y-%m-%d', " + column + ")"
	}
}
