package stubapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "studytech_stub"

// UsersRegisteredTotal counts accounts created through POST /users.
// Label:
//   - role: "student" or "teacher"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// PostsCreatedTotal counts publications created through POST /posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// DeletesTotal counts delete calls by resource and outcome. The "missing"
// outcome tracks double-deletes, which clients treat as success.
var DeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "deletes_total",
		Help:      "Total number of delete requests, by resource and outcome (done/missing).",
	},
	[]string{"resource", "outcome"},
)
