package redis

import (
	"fmt"
)

// View key builders. Page renderers cache under these names; mutations name
// the views they made stale and this layer deletes the keys. How the cache is
// refilled is the renderer's concern.

func ConsultantDashboardView(consultantID uint) string {
	return fmt.Sprintf("view:dashboard:consultant:%d", consultantID)
}

func ClientDashboardView(clientID uint) string {
	return fmt.Sprintf("view:dashboard:client:%d", clientID)
}

func BookingPageView(consultantID uint) string {
	return fmt.Sprintf("view:booking:%d", consultantID)
}

func ConsultantListView() string {
	return "view:consultants"
}

// InvalidateViews deletes the named view keys. Best-effort: invalidation
// failure means a stale page, not a failed mutation, so errors are swallowed
// after the client is nil-checked (tests run without redis).
func InvalidateViews(names ...string) {
	if Client == nil || len(names) == 0 {
		return
	}
	Client.Del(Ctx, names...)
}
