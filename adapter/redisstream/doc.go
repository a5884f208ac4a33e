// Package redisstream binds events to Redis Streams entries.
//
// Binary mode maps each context attribute to its own ce_-prefixed stream
// field, the payload to the "data" field and datacontenttype to the
// "content_type" field. Structured mode stores the whole JSON document
// under "data" with "content_type" set to the cloudevents media type.
//
// Example:
//
//	args, _ := redisstream.NewXAddArgs(e, "orders")
//	client.XAdd(ctx, args)
//
//	msgs, _ := client.XReadGroup(ctx, &redis.XReadGroupArgs{...}).Result()
//	for _, m := range msgs[0].Messages {
//	    e, err := redisstream.ToEvent(m)
//	    ...
//	}
package redisstream
