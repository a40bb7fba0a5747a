/*
Package distributed provides a cross-process observer subject using Redis
Pub/Sub as the coordination backend.

Every process creates a Subject over the same channel; events published by
any instance are delivered to the local subscribers of all instances,
including the publisher's own:

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	subject, err := distributed.New(distributed.Config[Deploy]{
		Redis:      rdb,
		Channel:    "deploys",
		InstanceID: hostname,
	})
	if err != nil {
		return err
	}
	defer subject.Close()

	sub, _ := subject.Subscribe(observer.Func[Deploy](onDeploy))
	defer sub.Cancel()

	// Received by subscribers in every process on the channel.
	subject.Notify(ctx, Deploy{Service: "api", Version: "v42"})

Unlike the local Subject, delivery is asynchronous: Notify returns once the
event is published to Redis, and subscribers (local ones included) receive it
from the channel's receive loop. Redis Pub/Sub is fire-and-forget; instances
that are down when an event is published never see it.

Events are JSON-encoded by default; supply Marshal/Unmarshal hooks in Config
for other encodings.
*/
package distributed
