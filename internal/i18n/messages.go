package i18n

// messages 按语言分组的文案目录
var messages = map[string]map[string]string{
	LocaleVI: {
		// 通用
		"error.bad_request":           "Yêu cầu không hợp lệ",
		"error.unauthorized":          "Vui lòng đăng nhập để tiếp tục",
		"error.forbidden":             "Bạn không có quyền thực hiện thao tác này",
		"error.user_id_invalid":       "Mã người dùng không hợp lệ",
		"error.user_id_type_invalid":  "Mã người dùng không hợp lệ",
		"error.admin_id_invalid":      "Mã quản trị viên không hợp lệ",
		"error.admin_id_type_invalid": "Mã quản trị viên không hợp lệ",

		// 认证
		"error.email_invalid":            "Địa chỉ email không hợp lệ",
		"error.email_exists":             "Email đã được đăng ký",
		"error.password_weak":            "Mật khẩu chưa đủ mạnh",
		"error.password_min_length":      "Mật khẩu phải có ít nhất %d ký tự",
		"error.password_require_upper":   "Mật khẩu phải chứa chữ in hoa",
		"error.password_require_lower":   "Mật khẩu phải chứa chữ thường",
		"error.password_require_number":  "Mật khẩu phải chứa chữ số",
		"error.password_require_special": "Mật khẩu phải chứa ký tự đặc biệt",
		"error.register_failed":          "Đăng ký thất bại, vui lòng thử lại",
		"error.invalid_credentials":      "Email hoặc mật khẩu không đúng",
		"error.account_locked":           "Tài khoản đã bị khóa",
		"error.login_failed":             "Đăng nhập thất bại, vui lòng thử lại",
		"error.google_auth_disabled":     "Đăng nhập Google hiện không khả dụng",
		"error.refresh_token_invalid":    "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
		"error.refresh_failed":           "Không thể gia hạn phiên đăng nhập",
		"error.logout_failed":            "Đăng xuất thất bại",
		"error.forgot_password_failed":   "Không thể gửi email khôi phục, vui lòng thử lại",
		"error.recovery_token_invalid":   "Mã khôi phục không hợp lệ",
		"error.recovery_token_expired":   "Mã khôi phục đã hết hạn",
		"error.reset_failed":             "Đặt lại mật khẩu thất bại",
		"error.old_password_incorrect":   "Mật khẩu hiện tại không đúng",
		"error.change_password_failed":   "Đổi mật khẩu thất bại",
		"error.user_not_found":           "Không tìm thấy người dùng",
		"error.profile_fetch_failed":     "Không thể tải thông tin tài khoản",
		"error.profile_update_failed":    "Cập nhật thông tin thất bại",
		"error.jwt_secret_missing":       "Máy chủ chưa được cấu hình đúng",
		"error.token_invalid":            "Phiên đăng nhập không hợp lệ",
		"error.auth_header_missing":      "Thiếu thông tin xác thực",
		"error.auth_header_invalid":      "Thông tin xác thực không hợp lệ",
		"error.login_too_many":           "Đăng nhập sai quá nhiều lần, vui lòng thử lại sau %d giây",
		"error.rate_limited":             "Thao tác quá nhanh, vui lòng thử lại sau %d giây",
		"error.rate_limit_unavailable":   "Hệ thống đang bận, vui lòng thử lại",

		// 商品
		"error.product_fetch_failed":  "Không thể tải danh sách sản phẩm",
		"error.product_not_found":     "Không tìm thấy sản phẩm",
		"error.product_slug_required": "Thiếu mã sản phẩm",
		"error.product_slug_exists":   "Mã sản phẩm đã tồn tại",
		"error.product_invalid":       "Thông tin sản phẩm không hợp lệ",
		"error.product_save_failed":   "Lưu sản phẩm thất bại",
		"error.product_delete_failed": "Xóa sản phẩm thất bại",
		"error.color_not_found":       "Màu sắc không tồn tại",
		"error.color_duplicated":      "Màu sắc bị trùng lặp",

		// 优惠券
		"error.coupon_not_found":       "Mã giảm giá không tồn tại",
		"error.coupon_not_started":     "Mã giảm giá chưa đến thời gian áp dụng",
		"error.coupon_expired":         "Mã giảm giá đã hết hạn",
		"error.coupon_exhausted":       "Mã giảm giá đã hết lượt sử dụng",
		"error.coupon_already_used":    "Bạn đã sử dụng mã giảm giá này",
		"error.coupon_invalid":         "Mã giảm giá không hợp lệ",
		"error.coupon_validate_failed": "Không thể kiểm tra mã giảm giá",
		"error.coupon_code_exists":     "Mã giảm giá đã tồn tại",
		"error.coupon_save_failed":     "Lưu mã giảm giá thất bại",
		"error.coupon_fetch_failed":    "Không thể tải danh sách mã giảm giá",
		"error.coupon_delete_failed":   "Xóa mã giảm giá thất bại",

		// 订单
		"error.cart_empty":              "Giỏ hàng trống",
		"error.order_item_invalid":      "Sản phẩm trong đơn hàng không hợp lệ",
		"error.insufficient_stock":      "Sản phẩm không đủ hàng trong kho",
		"error.order_create_failed":     "Đặt hàng thất bại, vui lòng thử lại",
		"error.order_cancel_failed":     "Hủy đơn hàng thất bại",
		"error.order_fetch_failed":      "Không thể tải đơn hàng",
		"error.order_code_required":     "Thiếu mã đơn hàng",
		"error.order_not_found":         "Không tìm thấy đơn hàng",
		"error.order_already_cancelled": "Đơn hàng đã được hủy trước đó",
		"error.order_not_cancellable":   "Đơn hàng không thể hủy ở trạng thái hiện tại",
		"error.order_status_invalid":    "Trạng thái đơn hàng không hợp lệ",
		"error.order_update_failed":     "Cập nhật đơn hàng thất bại",

		// 评论
		"error.rating_invalid":       "Điểm đánh giá phải từ 1 đến 5",
		"error.review_create_failed": "Gửi đánh giá thất bại",
		"error.review_fetch_failed":  "Không thể tải đánh giá",
		"error.review_not_found":     "Không tìm thấy đánh giá",
		"error.review_update_failed": "Cập nhật đánh giá thất bại",
		"error.review_delete_failed": "Xóa đánh giá thất bại",

		// 收藏与搜索
		"error.favorite_failed":             "Cập nhật danh sách yêu thích thất bại",
		"error.favorite_fetch_failed":       "Không thể tải danh sách yêu thích",
		"error.search_history_fetch_failed": "Không thể tải lịch sử tìm kiếm",
		"error.search_history_clear_failed": "Xóa lịch sử tìm kiếm thất bại",

		// Banner
		"error.banner_fetch_failed":  "Không thể tải banner",
		"error.banner_not_found":     "Không tìm thấy banner",
		"error.banner_invalid":       "Thông tin banner không hợp lệ",
		"error.banner_save_failed":   "Lưu banner thất bại",
		"error.banner_delete_failed": "Xóa banner thất bại",

		// 折扣活动
		"error.program_not_found":       "Không tìm thấy chương trình giảm giá",
		"error.program_not_cancellable": "Chương trình giảm giá không thể hủy ở trạng thái hiện tại",
		"error.program_invalid":         "Thông tin chương trình giảm giá không hợp lệ",
		"error.program_save_failed":     "Lưu chương trình giảm giá thất bại",
		"error.program_fetch_failed":    "Không thể tải chương trình giảm giá",

		// 后台用户与权限
		"error.user_fetch_failed":   "Không thể tải danh sách người dùng",
		"error.user_update_failed":  "Cập nhật người dùng thất bại",
		"error.role_invalid":        "Vai trò không hợp lệ",
		"error.authz_fetch_failed":  "Không thể tải thông tin phân quyền",
		"error.dashboard_fetch_failed": "Không thể tải dữ liệu thống kê",

		// 订单状态文案
		"order.status.waiting_confirm": "Chờ xác nhận",
		"order.status.processing":      "Đang xử lý",
		"order.status.delivered":       "Đã giao hàng",
		"order.status.cancel":          "Đã hủy",

		// 邮件文案
		"email.welcome.subject":            "Chào mừng bạn đến với Lamine Sport",
		"email.welcome.body":               "Xin chào %s,\n\nCảm ơn bạn đã đăng ký tài khoản tại Lamine Sport. Chúc bạn mua sắm vui vẻ!\n\nĐội ngũ Lamine Sport",
		"email.recovery.subject":           "Khôi phục mật khẩu Lamine Sport",
		"email.recovery.body":              "Xin chào %s,\n\nMã khôi phục mật khẩu của bạn là: %s\n\nMã có hiệu lực trong 30 phút. Nếu bạn không yêu cầu khôi phục, hãy bỏ qua email này.\n\nĐội ngũ Lamine Sport",
		"email.order_status.subject":       "Đơn hàng %s - %s",
		"email.order_status.body_created":  "Xin chào %s,\n\nĐơn hàng %s của bạn đã được tiếp nhận với tổng giá trị %s. Chúng tôi sẽ sớm xác nhận đơn hàng.\n\nĐội ngũ Lamine Sport",
		"email.order_status.body_delivered": "Xin chào %s,\n\nĐơn hàng %s (tổng giá trị %s) đã được giao thành công. Cảm ơn bạn đã mua sắm tại Lamine Sport!\n\nĐội ngũ Lamine Sport",
		"email.order_status.body_cancelled": "Xin chào %s,\n\nĐơn hàng %s của bạn đã được hủy. Nếu có thắc mắc, vui lòng liên hệ với chúng tôi.\n\nĐội ngũ Lamine Sport",
		"email.order_status.body":          "Xin chào %s,\n\nĐơn hàng %s của bạn đã chuyển sang trạng thái: %s. Tổng giá trị đơn hàng: %s.\n\nĐội ngũ Lamine Sport",
	},
	LocaleEN: {
		// 通用
		"error.bad_request":           "Invalid request",
		"error.unauthorized":          "Please sign in to continue",
		"error.forbidden":             "You are not allowed to perform this action",
		"error.user_id_invalid":       "Invalid user ID",
		"error.user_id_type_invalid":  "Invalid user ID",
		"error.admin_id_invalid":      "Invalid admin ID",
		"error.admin_id_type_invalid": "Invalid admin ID",

		// 认证
		"error.email_invalid":            "Invalid email address",
		"error.email_exists":             "Email is already registered",
		"error.password_weak":            "Password is too weak",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",
		"error.register_failed":          "Registration failed, please try again",
		"error.invalid_credentials":      "Incorrect email or password",
		"error.account_locked":           "This account has been locked",
		"error.login_failed":             "Sign in failed, please try again",
		"error.google_auth_disabled":     "Google sign-in is currently unavailable",
		"error.refresh_token_invalid":    "Session expired, please sign in again",
		"error.refresh_failed":           "Could not refresh your session",
		"error.logout_failed":            "Sign out failed",
		"error.forgot_password_failed":   "Could not send recovery email, please try again",
		"error.recovery_token_invalid":   "Invalid recovery code",
		"error.recovery_token_expired":   "Recovery code has expired",
		"error.reset_failed":             "Password reset failed",
		"error.old_password_incorrect":   "Current password is incorrect",
		"error.change_password_failed":   "Password change failed",
		"error.user_not_found":           "User not found",
		"error.profile_fetch_failed":     "Could not load your account",
		"error.profile_update_failed":    "Profile update failed",
		"error.jwt_secret_missing":       "Server is not configured correctly",
		"error.token_invalid":            "Invalid session",
		"error.auth_header_missing":      "Missing authorization",
		"error.auth_header_invalid":      "Invalid authorization",
		"error.login_too_many":           "Too many sign-in attempts, try again in %d seconds",
		"error.rate_limited":             "Too many requests, try again in %d seconds",
		"error.rate_limit_unavailable":   "Service is busy, please try again",

		// 商品
		"error.product_fetch_failed":  "Could not load products",
		"error.product_not_found":     "Product not found",
		"error.product_slug_required": "Product identifier is required",
		"error.product_slug_exists":   "Product identifier already exists",
		"error.product_invalid":       "Invalid product data",
		"error.product_save_failed":   "Could not save product",
		"error.product_delete_failed": "Could not delete product",
		"error.color_not_found":       "Color not found",
		"error.color_duplicated":      "Duplicate color",

		// 优惠券
		"error.coupon_not_found":       "Coupon does not exist",
		"error.coupon_not_started":     "Coupon is not active yet",
		"error.coupon_expired":         "Coupon has expired",
		"error.coupon_exhausted":       "Coupon has no remaining uses",
		"error.coupon_already_used":    "You have already used this coupon",
		"error.coupon_invalid":         "Invalid coupon",
		"error.coupon_validate_failed": "Could not validate coupon",
		"error.coupon_code_exists":     "Coupon code already exists",
		"error.coupon_save_failed":     "Could not save coupon",
		"error.coupon_fetch_failed":    "Could not load coupons",
		"error.coupon_delete_failed":   "Could not delete coupon",

		// 订单
		"error.cart_empty":              "Cart is empty",
		"error.order_item_invalid":      "Invalid order item",
		"error.insufficient_stock":      "Not enough stock",
		"error.order_create_failed":     "Could not place the order, please try again",
		"error.order_cancel_failed":     "Could not cancel the order",
		"error.order_fetch_failed":      "Could not load orders",
		"error.order_code_required":     "Order code is required",
		"error.order_not_found":         "Order not found",
		"error.order_already_cancelled": "Order has already been cancelled",
		"error.order_not_cancellable":   "Order cannot be cancelled in its current state",
		"error.order_status_invalid":    "Invalid order status",
		"error.order_update_failed":     "Could not update orders",

		// 评论
		"error.rating_invalid":       "Rating must be between 1 and 5",
		"error.review_create_failed": "Could not submit review",
		"error.review_fetch_failed":  "Could not load reviews",
		"error.review_not_found":     "Review not found",
		"error.review_update_failed": "Could not update review",
		"error.review_delete_failed": "Could not delete review",

		// 收藏与搜索
		"error.favorite_failed":             "Could not update favorites",
		"error.favorite_fetch_failed":       "Could not load favorites",
		"error.search_history_fetch_failed": "Could not load search history",
		"error.search_history_clear_failed": "Could not clear search history",

		// Banner
		"error.banner_fetch_failed":  "Could not load banners",
		"error.banner_not_found":     "Banner not found",
		"error.banner_invalid":       "Invalid banner data",
		"error.banner_save_failed":   "Could not save banner",
		"error.banner_delete_failed": "Could not delete banner",

		// 折扣活动
		"error.program_not_found":       "Discount program not found",
		"error.program_not_cancellable": "Discount program cannot be cancelled in its current state",
		"error.program_invalid":         "Invalid discount program data",
		"error.program_save_failed":     "Could not save discount program",
		"error.program_fetch_failed":    "Could not load discount programs",

		// 后台用户与权限
		"error.user_fetch_failed":      "Could not load users",
		"error.user_update_failed":     "Could not update user",
		"error.role_invalid":           "Invalid role",
		"error.authz_fetch_failed":     "Could not load permissions",
		"error.dashboard_fetch_failed": "Could not load dashboard data",

		// 订单状态文案
		"order.status.waiting_confirm": "Waiting for confirmation",
		"order.status.processing":      "Processing",
		"order.status.delivered":       "Delivered",
		"order.status.cancel":          "Cancelled",

		// 邮件文案
		"email.welcome.subject":             "Welcome to Lamine Sport",
		"email.welcome.body":                "Hi %s,\n\nThanks for creating an account at Lamine Sport. Happy shopping!\n\nThe Lamine Sport Team",
		"email.recovery.subject":            "Lamine Sport password recovery",
		"email.recovery.body":               "Hi %s,\n\nYour password recovery code is: %s\n\nThe code is valid for 30 minutes. If you did not request a reset, please ignore this email.\n\nThe Lamine Sport Team",
		"email.order_status.subject":        "Order %s - %s",
		"email.order_status.body_created":   "Hi %s,\n\nYour order %s has been received with a total of %s. We will confirm it shortly.\n\nThe Lamine Sport Team",
		"email.order_status.body_delivered": "Hi %s,\n\nYour order %s (total %s) has been delivered. Thank you for shopping at Lamine Sport!\n\nThe Lamine Sport Team",
		"email.order_status.body_cancelled": "Hi %s,\n\nYour order %s has been cancelled. If you have any questions, please contact us.\n\nThe Lamine Sport Team",
		"email.order_status.body":           "Hi %s,\n\nYour order %s is now: %s. Order total: %s.\n\nThe Lamine Sport Team",
	},
}
